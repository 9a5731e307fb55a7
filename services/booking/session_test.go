package booking

import (
	"context"
	"testing"

	"stylebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingSession_Flow(t *testing.T) {
	f := newFixture(t)
	f.withStylist(activeStylist())
	f.withSchedule()
	f.withDayAppointments(monday, confirmedAt("a-1", monday, "10:00"))
	f.appts.On("Create", mock.Anything, mock.AnythingOfType("*models.Appointment")).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Appointment).ID = "a-new"
	}).Return(nil)
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, customerID, models.StartSessionRequest{StylistID: stylistID})
	require.NoError(t, err)
	require.NotEmpty(t, session.SessionID)

	_, err = f.svc.ConfirmSession(ctx, customerID, session.SessionID)
	assert.ErrorIs(t, err, ErrSessionIncomplete)

	session, err = f.svc.UpdateSession(ctx, customerID, session.SessionID, models.UpdateSessionRequest{PortfolioID: "pf-1", Date: monday})
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 AM", "11:00 AM"}, session.AvailableTimes)

	_, err = f.svc.UpdateSession(ctx, customerID, session.SessionID, models.UpdateSessionRequest{Time: "10:00 AM"})
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	session, err = f.svc.UpdateSession(ctx, customerID, session.SessionID, models.UpdateSessionRequest{Time: "11:00 AM", Notes: "long hair"})
	require.NoError(t, err)
	assert.Equal(t, "11:00 AM", session.Time)

	appt, err := f.svc.ConfirmSession(ctx, customerID, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "a-new", appt.ID)
	assert.Equal(t, "long hair", appt.Notes)

	_, err = f.svc.GetSession(ctx, customerID, session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdateSession_DateChangeClearsStaleTime(t *testing.T) {
	f := newFixture(t)
	f.withStylist(activeStylist())
	f.withSchedule()
	f.withDayAppointments(monday)
	f.withDayAppointments("2026-01-06")
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, customerID, models.StartSessionRequest{StylistID: stylistID, PortfolioID: "pf-1"})
	require.NoError(t, err)
	session, err = f.svc.UpdateSession(ctx, customerID, session.SessionID, models.UpdateSessionRequest{Date: monday, Time: "9:00 AM"})
	require.NoError(t, err)
	require.Equal(t, "9:00 AM", session.Time)

	session, err = f.svc.UpdateSession(ctx, customerID, session.SessionID, models.UpdateSessionRequest{Date: "2026-01-06"})
	require.NoError(t, err)
	assert.Empty(t, session.Time)
	assert.Empty(t, session.AvailableTimes)
}

func TestBookingSession_OwnedByCustomer(t *testing.T) {
	f := newFixture(t)
	f.withStylist(activeStylist())
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, customerID, models.StartSessionRequest{StylistID: stylistID})
	require.NoError(t, err)

	_, err = f.svc.GetSession(ctx, "cus-2", session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, f.svc.CancelSession(ctx, "cus-2", session.SessionID), ErrSessionNotFound)

	require.NoError(t, f.svc.CancelSession(ctx, customerID, session.SessionID))
	_, err = f.svc.GetSession(ctx, customerID, session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStartSession_Rejections(t *testing.T) {
	f := newFixture(t)
	inactive := activeStylist()
	inactive.ID = "sty-off"
	inactive.Active = false
	f.withStylist(activeStylist())
	f.withStylist(inactive)

	_, err := f.svc.StartSession(context.Background(), customerID, models.StartSessionRequest{StylistID: "sty-off"})
	assert.ErrorIs(t, err, ErrStylistInactive)

	_, err = f.svc.StartSession(context.Background(), customerID, models.StartSessionRequest{StylistID: stylistID, PortfolioID: "pf-9"})
	assert.ErrorIs(t, err, ErrPortfolioNotFound)
}

func TestUpdateSession_RejectsUnknownPortfolio(t *testing.T) {
	f := newFixture(t)
	f.withStylist(activeStylist())
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, customerID, models.StartSessionRequest{StylistID: stylistID, PortfolioID: "pf-1"})
	require.NoError(t, err)

	_, err = f.svc.UpdateSession(ctx, customerID, session.SessionID, models.UpdateSessionRequest{PortfolioID: "pf-9"})
	assert.ErrorIs(t, err, ErrPortfolioNotFound)

	stored, err := f.svc.GetSession(ctx, customerID, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "pf-1", stored.PortfolioID)

	session, err = f.svc.UpdateSession(ctx, customerID, session.SessionID, models.UpdateSessionRequest{PortfolioID: "pf-2"})
	require.NoError(t, err)
	assert.Equal(t, "pf-2", session.PortfolioID)
	assert.Empty(t, session.AvailableTimes)
}
