package crm

import (
	"traction/internal/core"
)

// Commands mutate exactly one record and complete before returning. Unknown
// ids surface store.ErrNotFound; validation failures leave the collection
// untouched.

// AddContact derives the avatar and last-contact date and inserts the
// contact. New contacts always start unpinned.
func (w *Workspace) AddContact(c core.Contact) (int64, error) {
	c.Avatar = core.Initials(c.Name)
	c.LastContact = w.Today()
	c.Pinned = false
	return w.contacts.Add(c)
}

// UpdateContact replaces a contact's fields, regenerating the avatar and
// preserving identity, pin state and the last-contact date.
func (w *Workspace) UpdateContact(id int64, c core.Contact) error {
	return w.contacts.Modify(id, func(prev core.Contact) core.Contact {
		c.Avatar = core.Initials(c.Name)
		c.Pinned = prev.Pinned
		if c.LastContact.IsZero() {
			c.LastContact = prev.LastContact
		}
		return c
	})
}

// DeleteContact removes a contact by id.
func (w *Workspace) DeleteContact(id int64) error {
	return w.contacts.Remove(id)
}

// TogglePin flips a contact's pin flag without touching any other field.
func (w *Workspace) TogglePin(id int64) error {
	return w.contacts.Modify(id, func(c core.Contact) core.Contact {
		c.Pinned = !c.Pinned
		return c
	})
}

func (w *Workspace) AddOpportunity(o core.Opportunity) (int64, error) {
	return w.opportunities.Add(o)
}

func (w *Workspace) UpdateOpportunity(id int64, o core.Opportunity) error {
	return w.opportunities.Update(id, o)
}

func (w *Workspace) DeleteOpportunity(id int64) error {
	return w.opportunities.Remove(id)
}

func (w *Workspace) AddTask(t core.Task) (int64, error) {
	return w.tasks.Add(t)
}

func (w *Workspace) UpdateTask(id int64, t core.Task) error {
	return w.tasks.Update(id, t)
}

func (w *Workspace) DeleteTask(id int64) error {
	return w.tasks.Remove(id)
}

func (w *Workspace) AddAppointment(a core.Appointment) (int64, error) {
	return w.appointments.Add(a)
}

func (w *Workspace) UpdateAppointment(id int64, a core.Appointment) error {
	return w.appointments.Update(id, a)
}

func (w *Workspace) DeleteAppointment(id int64) error {
	return w.appointments.Remove(id)
}
