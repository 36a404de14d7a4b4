package usecase

import (
	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
	"healthhub/internal/infrastructure/remote"
	"healthhub/internal/repository"
	"healthhub/internal/session"
	"healthhub/pkg/validator"

	"github.com/sirupsen/logrus"
)

type (
	AppointmentList = ResourceListController[entity.Appointment, dto.CreateAppointmentRequest]
	ContactList     = ResourceListController[entity.EmergencyContact, dto.CreateContactRequest]
	ReminderList    = ResourceListController[entity.MedicineReminder, dto.CreateReminderRequest]
)

// Workspace is everything one browser session owns: its session context, its
// remote client with the credential cookie jar, and one isolated controller
// per view.
type Workspace struct {
	ID           string
	Session      *session.Session
	Auth         AuthUsecase
	Appointments *AppointmentList
	History      *MedicalHistory
	Contacts     *ContactList
	Reminders    *ReminderList
	Facilities   *FacilitySearch

	client *remote.Client
}

func NewWorkspace(
	id string,
	baseURL string,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	opts ...remote.Option,
) (*Workspace, error) {
	client, err := remote.NewClient(baseURL, log, opts...)
	if err != nil {
		return nil, err
	}

	sess := session.New(client)

	ws := &Workspace{
		ID:      id,
		Session: sess,
		Auth:    NewAuthUsecase(log, validator, sess, repository.NewProfileRepository(client), client),
		Appointments: NewResourceListController[entity.Appointment, dto.CreateAppointmentRequest](
			"appointments", remote.NewCollection[entity.Appointment](client, remote.KindAppointment), validator, log),
		History: NewMedicalHistory(NewResourceListController[entity.Appointment, dto.CreateAppointmentRequest](
			"medical history", remote.NewCollection[entity.Appointment](client, remote.KindAppointment), validator, log)),
		Contacts: NewResourceListController[entity.EmergencyContact, dto.CreateContactRequest](
			"emergency contacts", remote.NewCollection[entity.EmergencyContact](client, remote.KindEmergencyContact), validator, log),
		Reminders: NewResourceListController[entity.MedicineReminder, dto.CreateReminderRequest](
			"medicine reminders", remote.NewCollection[entity.MedicineReminder](client, remote.KindMedicineReminder), validator, log),
		Facilities: NewFacilitySearch(repository.NewFacilityRepository(client), validator, log),
		client:     client,
	}

	// cached lists of the previous user must not survive a logout
	sess.OnLogout(func(string) { ws.reset() })

	return ws, nil
}

func (ws *Workspace) reset() {
	ws.Appointments.Reset()
	ws.History.Reset()
	ws.Contacts.Reset()
	ws.Reminders.Reset()
	ws.Facilities.Mount()
}
