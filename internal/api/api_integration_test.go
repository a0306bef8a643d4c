package api

import (
	"context"
	"embed"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GinsengJuice/CalendarApp/internal/assistant"
	ct "github.com/GinsengJuice/CalendarApp/internal/caltest"
	"github.com/GinsengJuice/CalendarApp/internal/janitor"
)

const (
	roleViewer = "viewer"
	roleEditor = "editor"

	email1 = "owner@example.com"
	email2 = "viewer@example.com"
	email3 = "editor@example.com"
	email4 = "stranger@example.com"

	password1 = "pwd1"
	password2 = "pwd2"
	password3 = "pwd3"
	password4 = "pwd4"
)

// cannedOracle replays scripted replies so assistant flows are testable
// without a live model.
type cannedOracle struct {
	replies []assistant.Reply
	i       int
}

func (o *cannedOracle) Chat(_ context.Context, _ string, _ time.Time) (assistant.Reply, error) {
	if o.i >= len(o.replies) {
		return assistant.Reply{Text: "out of scripted replies"}, nil
	}
	r := o.replies[o.i]
	o.i++
	return r, nil
}

// --------------------
// INTEGRATION TESTING
// --------------------

// initialize a Postgres testcontainer and
// return a configured server for testing
func doServerSetup(t *testing.T) (*http.Server, *APIConfig) {
	t.Setenv("PLATFORM", "dev")
	t.Setenv("SECRET", "integration-test-secret")

	pgdb := SetupPostgres(t)
	t.Cleanup(func() {
		err := pgdb.Container.Restore(pgdb.Ctx)
		require.NoError(t, err)
	})
	cfg := &APIConfig{}
	cfg.Init("../../.env", pgdb.URI)
	cfg.ConnectToDB(embed.FS{}, "")
	return &http.Server{Handler: SetupMux(cfg)}, cfg
}

// Should properly make, count, and delete users
func Test_MakeAndResetUsers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server, _ := doServerSetup(t)
	c := &APITestClient{Mux: server.Handler, testState: t}

	// Delete all users
	c.Request(ct.DeleteAllUsers(), http.StatusOK)

	// Create two users
	c.Request(ct.CreateUser(email1, "Owner", password1), http.StatusCreated)
	c.Request(ct.CreateUser(email2, "Viewer", password2), http.StatusCreated)

	// User count should now be 2
	c.Request(ct.GetUserCount(), http.StatusOK)
	count, _ := c.GetJSONFieldAsInt64("count")
	assert.Equal(t, int64(2), count)

	// Delete all users
	c.Request(ct.DeleteAllUsers(), http.StatusOK)

	// User count should now be 0 again
	c.Request(ct.GetUserCount(), http.StatusOK)
	count, _ = c.GetJSONFieldAsInt64("count")
	assert.Equal(t, int64(0), count)
}

// Users should be able to sign up, log in, change credentials, and delete
// themselves, but never each other.
func Test_UserLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server, _ := doServerSetup(t)
	c := &APITestClient{Mux: server.Handler, testState: t}

	c.Request(ct.DeleteAllUsers(), http.StatusOK)

	// Create two users; a duplicate email must be rejected
	c.Request(ct.CreateUser(email1, "Owner", password1), http.StatusCreated)
	c.Request(ct.CreateUser(email1, "Impostor", "otherpwd"), http.StatusConflict)
	c.Request(ct.CreateUser(email2, "Viewer", password2), http.StatusCreated)

	// Wrong password should not log in
	c.Request(ct.LoginUser(email1, "wrongpwd"), http.StatusUnauthorized)

	// Log in both users
	c.Request(ct.LoginUser(email1, password1), http.StatusOK)
	jwt1, _ := c.GetJSONFieldAsString("token")
	c.Request(ct.LoginUser(email2, password2), http.StatusOK)
	jwt2, _ := c.GetJSONFieldAsString("token")

	// Update user1 credentials, then log in with the new ones
	c.Request(ct.UpdateUser(jwt1, "renamed@example.com", "newpwd1"), http.StatusNoContent)
	c.Request(ct.LoginUser("renamed@example.com", "newpwd1"), http.StatusOK)
	jwt1, _ = c.GetJSONFieldAsString("token")

	// user2 cannot delete user1
	c.Request(ct.DeleteUser(jwt2, "renamed@example.com", "newpwd1"), http.StatusUnauthorized)

	// user1 deletes themselves
	c.Request(ct.DeleteUser(jwt1, "renamed@example.com", "newpwd1"), http.StatusOK)

	c.Request(ct.GetUserCount(), http.StatusOK)
	count, _ := c.GetJSONFieldAsInt64("count")
	assert.Equal(t, int64(1), count)
}

/*
An owner shares a category with a viewer and an editor.
Along the way, each role attempts actions it should and should not
be able to perform, verifying the full authorization matrix.
*/
func Test_ShareRolesAndVisibility(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server, _ := doServerSetup(t)
	c := &APITestClient{Mux: server.Handler, testState: t}

	c.Request(ct.DeleteAllUsers(), http.StatusOK)

	// Create owner, viewer, editor, and a stranger
	c.Request(ct.CreateUser(email1, "Owner", password1), http.StatusCreated)
	ownerID, _ := c.GetJSONFieldAsString("id")
	c.Request(ct.CreateUser(email2, "Viewer", password2), http.StatusCreated)
	viewerID, _ := c.GetJSONFieldAsString("id")
	c.Request(ct.CreateUser(email3, "Editor", password3), http.StatusCreated)
	c.Request(ct.CreateUser(email4, "Stranger", password4), http.StatusCreated)

	c.Request(ct.LoginUser(email1, password1), http.StatusOK)
	jwtOwner, _ := c.GetJSONFieldAsString("token")
	c.Request(ct.LoginUser(email2, password2), http.StatusOK)
	jwtViewer, _ := c.GetJSONFieldAsString("token")
	c.Request(ct.LoginUser(email3, password3), http.StatusOK)
	jwtEditor, _ := c.GetJSONFieldAsString("token")
	c.Request(ct.LoginUser(email4, password4), http.StatusOK)
	jwtStranger, _ := c.GetJSONFieldAsString("token")

	// Owner creates a category and an event in it
	c.Request(ct.CreateCategory(jwtOwner, "Team Calendar", "#ff0000"), http.StatusCreated)
	category1, _ := c.GetJSONFieldAsString("id")
	c.Request(ct.CreateEvent(jwtOwner, "Standup", "2026-03-10T09:00:00Z", "2026-03-10T09:15:00Z", category1), http.StatusCreated)
	event1, _ := c.GetJSONFieldAsString("id")

	// Share to viewer and editor
	c.Request(ct.ShareCategory(jwtOwner, category1, email2, roleViewer), http.StatusCreated)
	c.Request(ct.ShareCategory(jwtOwner, category1, email3, roleEditor), http.StatusCreated)

	// The stranger sees nothing
	c.Request(ct.GetEvents(jwtStranger), http.StatusOK)
	gotEvents, _ := c.GetJSONField("events")
	assert.Empty(t, gotEvents)

	// The viewer sees the shared category annotated with their role
	c.Request(ct.GetCategories(jwtViewer), http.StatusOK)
	gotCategories, _ := c.GetJSONField("categories")
	require.Len(t, gotCategories.([]any), 1)
	sharedCategory := gotCategories.([]any)[0].(map[string]any)
	assert.Equal(t, true, sharedCategory["is_shared"])
	assert.Equal(t, roleViewer, sharedCategory["share_role"])

	// The viewer sees the owner's event but cannot write anything
	c.Request(ct.GetEvents(jwtViewer), http.StatusOK)
	gotEvents, _ = c.GetJSONField("events")
	assert.Len(t, gotEvents.([]any), 1)
	c.Request(ct.CreateEvent(jwtViewer, "Sneaky", "2026-03-11T09:00:00Z", "2026-03-11T10:00:00Z", category1), http.StatusUnauthorized)
	c.Request(ct.UpdateEvent(jwtViewer, event1, `{"title":"Renamed by viewer"}`), http.StatusUnauthorized)
	c.Request(ct.DeleteEvent(jwtViewer, event1), http.StatusUnauthorized)

	// The stranger cannot touch the event either
	c.Request(ct.UpdateEvent(jwtStranger, event1, `{"title":"Renamed by stranger"}`), http.StatusUnauthorized)

	// The editor may update the owner's event, and a crafted owner_id in
	// the payload must not reassign ownership
	c.Request(ct.UpdateEvent(jwtEditor, event1, `{"title":"Standup (moved)","owner_id":"`+viewerID+`"}`), http.StatusOK)
	gotOwner, _ := c.GetJSONFieldAsString("owner_id")
	assert.Equal(t, ownerID, gotOwner)

	// The editor creates their own event in the shared category
	c.Request(ct.CreateEvent(jwtEditor, "Editor's review", "2026-03-12T14:00:00Z", "2026-03-12T15:00:00Z", category1), http.StatusCreated)
	event2, _ := c.GetJSONFieldAsString("id")
	editorEventOwner, _ := c.GetJSONFieldAsString("owner_id")
	assert.NotEqual(t, ownerID, editorEventOwner)

	// Event ownership is independent of category ownership: the category
	// owner holds no grant, so the editor's event is not theirs to edit
	c.Request(ct.UpdateEvent(jwtOwner, event2, `{"title":"Taken over"}`), http.StatusUnauthorized)

	// Grantees never manage the category itself
	c.Request(ct.UpdateCategory(jwtEditor, category1, "Hijacked", ""), http.StatusUnauthorized)
	c.Request(ct.DeleteCategory(jwtEditor, category1), http.StatusUnauthorized)
	c.Request(ct.ShareCategory(jwtEditor, category1, email4, roleEditor), http.StatusUnauthorized)
	c.Request(ct.GetCategoryShares(jwtViewer, category1), http.StatusUnauthorized)

	// The owner lists both grants
	c.Request(ct.GetCategoryShares(jwtOwner, category1), http.StatusOK)
	gotShares, _ := c.GetJSONField("shares")
	assert.Len(t, gotShares.([]any), 2)

	// Revoking the viewer removes their visibility; revoking again is a no-op
	c.Request(ct.RevokeShare(jwtOwner, category1, viewerID), http.StatusNoContent)
	c.Request(ct.RevokeShare(jwtOwner, category1, viewerID), http.StatusNoContent)
	c.Request(ct.GetEvents(jwtViewer), http.StatusOK)
	gotEvents, _ = c.GetJSONField("events")
	assert.Empty(t, gotEvents)
}

// Grant bookkeeping: bad roles, self-shares, unknown invitees, and
// duplicate grants must all be rejected with the right status.
func Test_ShareValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server, _ := doServerSetup(t)
	c := &APITestClient{Mux: server.Handler, testState: t}

	c.Request(ct.DeleteAllUsers(), http.StatusOK)

	c.Request(ct.CreateUser(email1, "Owner", password1), http.StatusCreated)
	c.Request(ct.CreateUser(email2, "Viewer", password2), http.StatusCreated)

	c.Request(ct.LoginUser(email1, password1), http.StatusOK)
	jwtOwner, _ := c.GetJSONFieldAsString("token")

	c.Request(ct.CreateCategory(jwtOwner, "Chores", ""), http.StatusCreated)
	category1, _ := c.GetJSONFieldAsString("id")
	defaultedColor, _ := c.GetJSONFieldAsString("color")
	assert.Equal(t, "#007bff", defaultedColor)

	// Unknown role
	c.Request(ct.ShareCategory(jwtOwner, category1, email2, "manager"), http.StatusBadRequest)
	// Sharing with yourself
	c.Request(ct.ShareCategory(jwtOwner, category1, email1, roleViewer), http.StatusBadRequest)
	// Unknown invitee
	c.Request(ct.ShareCategory(jwtOwner, category1, "nobody@example.com", roleViewer), http.StatusNotFound)
	// Unknown category
	c.Request(ct.ShareCategory(jwtOwner, "11111111-2222-3333-4444-555555555555", email2, roleViewer), http.StatusNotFound)

	// First grant lands, the second collides
	c.Request(ct.ShareCategory(jwtOwner, category1, email2, roleViewer), http.StatusCreated)
	c.Request(ct.ShareCategory(jwtOwner, category1, email2, roleEditor), http.StatusConflict)
}

// Events must be well-formed before they land in the database.
func Test_EventValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server, _ := doServerSetup(t)
	c := &APITestClient{Mux: server.Handler, testState: t}

	c.Request(ct.DeleteAllUsers(), http.StatusOK)

	c.Request(ct.CreateUser(email1, "Owner", password1), http.StatusCreated)
	c.Request(ct.LoginUser(email1, password1), http.StatusOK)
	jwtOwner, _ := c.GetJSONFieldAsString("token")

	c.Request(ct.CreateCategory(jwtOwner, "Work", "#00ff00"), http.StatusCreated)
	category1, _ := c.GetJSONFieldAsString("id")

	// Missing title
	c.Request(ct.CreateEvent(jwtOwner, "", "2026-03-10T09:00:00Z", "2026-03-10T10:00:00Z", category1), http.StatusBadRequest)
	// End before start
	c.Request(ct.CreateEvent(jwtOwner, "Backwards", "2026-03-10T10:00:00Z", "2026-03-10T09:00:00Z", category1), http.StatusBadRequest)
	// End equal to start
	c.Request(ct.CreateEvent(jwtOwner, "Instant", "2026-03-10T09:00:00Z", "2026-03-10T09:00:00Z", category1), http.StatusBadRequest)
	// Unparseable timestamp
	c.Request(ct.CreateEvent(jwtOwner, "Garbled", "next tuesday", "2026-03-10T10:00:00Z", category1), http.StatusBadRequest)
	// Unknown category
	c.Request(ct.CreateEvent(jwtOwner, "Lost", "2026-03-10T09:00:00Z", "2026-03-10T10:00:00Z", "11111111-2222-3333-4444-555555555555"), http.StatusNotFound)

	// A valid event, then an update that would break the time invariant
	c.Request(ct.CreateEvent(jwtOwner, "Planning", "2026-03-10T09:00:00Z", "2026-03-10T10:00:00Z", category1), http.StatusCreated)
	event1, _ := c.GetJSONFieldAsString("id")
	c.Request(ct.UpdateEvent(jwtOwner, event1, `{"end_time":"2026-03-10T08:00:00Z"}`), http.StatusBadRequest)

	// Partial update keeps the remaining fields
	c.Request(ct.UpdateEvent(jwtOwner, event1, `{"title":"Planning (extended)"}`), http.StatusOK)
	gotTitle, _ := c.GetJSONFieldAsString("title")
	gotColor, _ := c.GetJSONFieldAsString("color")
	assert.Equal(t, "Planning (extended)", gotTitle)
	assert.Equal(t, "#00ff00", gotColor)
}

// Deleting a category takes its events and share grants with it.
func Test_CascadeDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server, cfg := doServerSetup(t)
	c := &APITestClient{Mux: server.Handler, testState: t}

	c.Request(ct.DeleteAllUsers(), http.StatusOK)

	c.Request(ct.CreateUser(email1, "Owner", password1), http.StatusCreated)
	c.Request(ct.CreateUser(email2, "Viewer", password2), http.StatusCreated)

	c.Request(ct.LoginUser(email1, password1), http.StatusOK)
	jwtOwner, _ := c.GetJSONFieldAsString("token")
	c.Request(ct.LoginUser(email2, password2), http.StatusOK)
	jwtViewer, _ := c.GetJSONFieldAsString("token")

	c.Request(ct.CreateCategory(jwtOwner, "Doomed", "#333333"), http.StatusCreated)
	category1, _ := c.GetJSONFieldAsString("id")
	c.Request(ct.CreateCategory(jwtOwner, "Survivor", "#444444"), http.StatusCreated)
	category2, _ := c.GetJSONFieldAsString("id")

	c.Request(ct.CreateEvent(jwtOwner, "Gone 1", "2026-04-01T09:00:00Z", "2026-04-01T10:00:00Z", category1), http.StatusCreated)
	c.Request(ct.CreateEvent(jwtOwner, "Gone 2", "2026-04-02T09:00:00Z", "2026-04-02T10:00:00Z", category1), http.StatusCreated)
	c.Request(ct.CreateEvent(jwtOwner, "Still here", "2026-04-03T09:00:00Z", "2026-04-03T10:00:00Z", category2), http.StatusCreated)

	c.Request(ct.ShareCategory(jwtOwner, category1, email2, roleViewer), http.StatusCreated)

	// A grantee cannot delete the category
	c.Request(ct.DeleteCategory(jwtViewer, category1), http.StatusUnauthorized)

	// The owner can, and everything inside it goes too
	c.Request(ct.DeleteCategory(jwtOwner, category1), http.StatusNoContent)

	c.Request(ct.GetEvents(jwtOwner), http.StatusOK)
	gotEvents, _ := c.GetJSONField("events")
	require.Len(t, gotEvents.([]any), 1)
	survivor := gotEvents.([]any)[0].(map[string]any)
	assert.Equal(t, "Still here", survivor["title"])

	// The grantee's visibility vanished with the share
	c.Request(ct.GetEvents(jwtViewer), http.StatusOK)
	gotEvents, _ = c.GetJSONField("events")
	assert.Empty(t, gotEvents)

	// Operations on the deleted category report not found, for everyone
	c.Request(ct.UpdateCategory(jwtOwner, category1, "Zombie", ""), http.StatusNotFound)
	c.Request(ct.ExportCategoryICS(jwtViewer, category1), http.StatusNotFound)

	// Nothing for the sweep to do after a clean cascade
	events, shares := janitor.New(cfg.Queries(), "").Sweep(context.Background())
	assert.Zero(t, events)
	assert.Zero(t, shares)
}

// The sweep clears rows whose category vanished outside the cascade path.
func Test_JanitorSweep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server, cfg := doServerSetup(t)
	c := &APITestClient{Mux: server.Handler, testState: t}
	ctx := context.Background()

	c.Request(ct.DeleteAllUsers(), http.StatusOK)

	c.Request(ct.CreateUser(email1, "Owner", password1), http.StatusCreated)
	c.Request(ct.CreateUser(email2, "Viewer", password2), http.StatusCreated)
	c.Request(ct.LoginUser(email1, password1), http.StatusOK)
	jwtOwner, _ := c.GetJSONFieldAsString("token")

	c.Request(ct.CreateCategory(jwtOwner, "Orphanage", "#555555"), http.StatusCreated)
	category1, _ := c.GetJSONFieldAsString("id")
	c.Request(ct.CreateEvent(jwtOwner, "Orphan 1", "2026-05-01T09:00:00Z", "2026-05-01T10:00:00Z", category1), http.StatusCreated)
	c.Request(ct.CreateEvent(jwtOwner, "Orphan 2", "2026-05-02T09:00:00Z", "2026-05-02T10:00:00Z", category1), http.StatusCreated)
	c.Request(ct.ShareCategory(jwtOwner, category1, email2, roleViewer), http.StatusCreated)

	// Simulate an interrupted cascade: the category row disappears while
	// its children remain
	categoryUUID, err := uuid.Parse(category1)
	require.NoError(t, err)
	require.NoError(t, cfg.Queries().DeleteCategoryByID(ctx, categoryUUID))

	events, shares := janitor.New(cfg.Queries(), "").Sweep(ctx)
	assert.Equal(t, int64(2), events)
	assert.Equal(t, int64(1), shares)

	// A second sweep finds nothing
	events, shares = janitor.New(cfg.Queries(), "").Sweep(ctx)
	assert.Zero(t, events)
	assert.Zero(t, shares)
}

// Anyone with read access may export a category as iCalendar data.
func Test_ICSExport(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server, _ := doServerSetup(t)
	c := &APITestClient{Mux: server.Handler, testState: t}

	c.Request(ct.DeleteAllUsers(), http.StatusOK)

	c.Request(ct.CreateUser(email1, "Owner", password1), http.StatusCreated)
	c.Request(ct.CreateUser(email2, "Viewer", password2), http.StatusCreated)
	c.Request(ct.CreateUser(email4, "Stranger", password4), http.StatusCreated)

	c.Request(ct.LoginUser(email1, password1), http.StatusOK)
	jwtOwner, _ := c.GetJSONFieldAsString("token")
	c.Request(ct.LoginUser(email2, password2), http.StatusOK)
	jwtViewer, _ := c.GetJSONFieldAsString("token")
	c.Request(ct.LoginUser(email4, password4), http.StatusOK)
	jwtStranger, _ := c.GetJSONFieldAsString("token")

	c.Request(ct.CreateCategory(jwtOwner, "Conference", "#123456"), http.StatusCreated)
	category1, _ := c.GetJSONFieldAsString("id")
	c.Request(ct.CreateEvent(jwtOwner, "Keynote", "2026-06-01T09:00:00Z", "2026-06-01T10:00:00Z", category1), http.StatusCreated)
	c.Request(ct.ShareCategory(jwtOwner, category1, email2, roleViewer), http.StatusCreated)

	// A viewer grant is enough to export
	c.Request(ct.ExportCategoryICS(jwtViewer, category1), http.StatusOK)
	assert.Contains(t, c.W.Header().Get("Content-Type"), "text/calendar")
	body := c.W.Body.String()
	assert.True(t, strings.Contains(body, "BEGIN:VCALENDAR"))
	assert.True(t, strings.Contains(body, "SUMMARY:Keynote"))

	// No grant, no export
	c.Request(ct.ExportCategoryICS(jwtStranger, category1), http.StatusUnauthorized)
}

// The assistant executes scripted tool calls under the caller's identity.
func Test_AssistantChat(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server, cfg := doServerSetup(t)
	c := &APITestClient{Mux: server.Handler, testState: t}

	c.Request(ct.DeleteAllUsers(), http.StatusOK)

	c.Request(ct.CreateUser(email1, "Owner", password1), http.StatusCreated)
	c.Request(ct.LoginUser(email1, password1), http.StatusOK)
	jwtOwner, _ := c.GetJSONFieldAsString("token")

	// No oracle configured yet
	c.Request(ct.AskAssistant(jwtOwner, "hello", "2026-07-01T08:00:00Z", ""), http.StatusServiceUnavailable)

	cfg.SetOracle(&cannedOracle{replies: []assistant.Reply{
		{Text: "Hello! How can I help with your calendar?"},
		{Call: &assistant.FunctionCall{
			Name: assistant.ToolCreateEvent,
			Args: map[string]any{
				"title":     "Dentist",
				"startTime": "2026-07-02T10:00:00Z",
			},
		}},
		{Call: &assistant.FunctionCall{
			Name: assistant.ToolGetEventsByDate,
			Args: map[string]any{"date": "2026-07-02"},
		}},
	}})

	// A plain text reply passes straight through
	c.Request(ct.AskAssistant(jwtOwner, "hello", "2026-07-01T08:00:00Z", ""), http.StatusOK)
	isCall, _ := c.GetJSONField("is_function_call")
	assert.NotEqual(t, true, isCall)

	// Creating with no category at all fails cleanly
	oracleState := cfg.oracle.(*cannedOracle)
	c.Request(ct.AskAssistant(jwtOwner, "book a dentist appointment tomorrow at 10", "2026-07-01T08:00:00Z", ""), http.StatusBadRequest)

	// With a category in place, the same request schedules the event with
	// a one hour default duration
	c.Request(ct.CreateCategory(jwtOwner, "Personal", "#abcdef"), http.StatusCreated)
	oracleState.i = 1
	c.Request(ct.AskAssistant(jwtOwner, "book a dentist appointment tomorrow at 10", "2026-07-01T08:00:00Z", ""), http.StatusOK)
	isCall, _ = c.GetJSONField("is_function_call")
	assert.Equal(t, true, isCall)
	gotEvent, _ := c.GetJSONField("event")
	require.NotNil(t, gotEvent)
	assert.Equal(t, "Dentist", gotEvent.(map[string]any)["title"])
	assert.Equal(t, "2026-07-02T11:00:00Z", gotEvent.(map[string]any)["end_time"])

	// The lookup call reports the event just created
	c.Request(ct.AskAssistant(jwtOwner, "what's on my calendar tomorrow?", "2026-07-01T08:00:00Z", ""), http.StatusOK)
	gotEvents, _ := c.GetJSONField("events")
	assert.Len(t, gotEvents.([]any), 1)
}

// Request metrics are exposed for scraping.
func Test_MetricsEndpoint(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server, _ := doServerSetup(t)
	c := &APITestClient{Mux: server.Handler, testState: t}

	c.Request(ct.GetUserCount(), http.StatusOK)

	c.Request(httptest.NewRequest(http.MethodGet, "/admin/metrics", nil), http.StatusOK)
	assert.True(t, strings.Contains(c.W.Body.String(), "calendarapp_http_requests_total"))
}
