package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plandeck/plandeck/pkg/database"
	"github.com/plandeck/plandeck/pkg/models"
	"github.com/plandeck/plandeck/pkg/services"
	testdb "github.com/plandeck/plandeck/test/database"
	"github.com/plandeck/plandeck/test/util"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient     *database.Client
	publisher    *Publisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	ref          models.TenantRef
	channel      string // plan:<planID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// NOTIFY channels are database-level and the container is shared, so
	// plan IDs must not collide across tests.
	ref := models.TenantRef{
		OrganizationID: "org-" + uuid.New().String()[:8],
		ProjectID:      "proj-int",
		PlanID:         uuid.New().String(),
	}

	publisher := NewPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &streamingTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		ref:          ref,
		channel:      PlanChannel(ref.PlanID),
	}
}

func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the env's channel, reads subscription.confirmed, and waits
// for the LISTEN to propagate.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Wait for LISTEN on the NotifyListener's dedicated connection, polling
	// instead of sleeping.
	require.Eventually(t, func() bool {
		return env.listener.isListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", env.channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	err := env.publisher.Publish(ctx, env.ref, SheetImageGeneratedPayload{
		SheetID:        "sheet-0",
		ProjectID:      env.ref.ProjectID,
		PlanID:         env.ref.PlanID,
		PlanName:       "Tower A",
		PageNumber:     1,
		LocalImagePath: "organizations/org-int/projects/proj-int/plans/p/sheets/sheet-0/source.png",
		Width:          3400,
		Height:         2200,
		GeneratedAt:    time.Now().UnixMilli(),
	})
	require.NoError(t, err)

	err = env.publisher.Publish(ctx, env.ref, SheetMetadataExtractedPayload{
		SheetID:     "sheet-0",
		PlanID:      env.ref.PlanID,
		SheetNumber: "A1",
		ExtractedAt: time.Now().UnixMilli(),
	})
	require.NoError(t, err)

	rows, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, EventSheetImageGenerated, rows[0].Name)
	assert.Equal(t, env.channel, rows[0].Channel)
	assert.Equal(t, env.ref.PlanID, rows[0].PlanID)
	assert.Equal(t, env.ref.OrganizationID, rows[0].OrganizationID)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rows[0].Payload, &payload))
	assert.Equal(t, "sheet-0", payload["sheetId"])
	assert.Equal(t, "Tower A", payload["planName"])

	assert.Equal(t, EventSheetMetadataExtracted, rows[1].Name)
	assert.Greater(t, rows[1].ID, rows[0].ID)
}

func TestIntegration_DuplicateEmissionDropped(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	evt := SheetTilesGeneratedPayload{
		SheetID:          "sheet-3",
		PlanID:           env.ref.PlanID,
		LocalPmtilesPath: "organizations/org-int/projects/proj-int/plans/p/sheets/sheet-3/tiles.pmtiles",
		MinZoom:          0,
		MaxZoom:          5,
		GeneratedAt:      time.Now().UnixMilli(),
	}

	// A redelivered tile job re-emits the same event; the dedupe index
	// must keep exactly one row.
	require.NoError(t, env.publisher.Publish(ctx, env.ref, evt))
	require.NoError(t, env.publisher.Publish(ctx, env.ref, evt))

	rows, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	err := env.publisher.Publish(ctx, env.ref, PlanProcessingStartedPayload{
		PlanID:    env.ref.PlanID,
		StartedAt: time.Now().UnixMilli(),
	})
	require.NoError(t, err)

	// The envelope should arrive via pg_notify → listener → manager.
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventPlanProcessingStarted, msg["name"])
	assert.Equal(t, env.channel, msg["channel"])
	assert.NotNil(t, msg["id"])

	data, ok := msg["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, env.ref.PlanID, data["planId"])
}

func TestIntegration_OrgChannelMirror(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Subscribe to the org channel instead of the plan channel.
	orgChannel := OrgChannel(env.ref.OrganizationID)
	conn := env.connectWS(t)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: orgChannel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])
	require.Eventually(t, func() bool {
		return env.listener.isListening(orgChannel)
	}, 2*time.Second, 10*time.Millisecond)

	err := env.publisher.Publish(ctx, env.ref, PlanProcessingFailedPayload{
		PlanID:   env.ref.PlanID,
		Error:    "Processing timeout exceeded",
		FailedAt: time.Now().UnixMilli(),
	})
	require.NoError(t, err)

	// Lifecycle events are mirrored to the org channel as transient copies.
	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventPlanProcessingFailed, msg["name"])
	assert.Equal(t, orgChannel, msg["channel"])

	// Only the plan channel holds the persisted row.
	rows, err := env.eventService.GetEventsSince(ctx, orgChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, rows, "org channel mirror must not be persisted")

	rows, err = env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Pre-populate with three per-sheet events.
	for _, sheetID := range []string{"sheet-0", "sheet-1", "sheet-2"} {
		err := env.publisher.Publish(ctx, env.ref, SheetImageGeneratedPayload{
			SheetID:        sheetID,
			ProjectID:      env.ref.ProjectID,
			PlanID:         env.ref.PlanID,
			PlanName:       "Tower A",
			PageNumber:     1,
			LocalImagePath: "x/source.png",
			Width:          100,
			Height:         100,
			GeneratedAt:    time.Now().UnixMilli(),
		})
		require.NoError(t, err)
	}

	rows, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	firstEventID := int64(rows[0].ID)

	// A new subscriber gets all three via auto-catchup.
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	for _, sheetID := range []string{"sheet-0", "sheet-1", "sheet-2"} {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventSheetImageGenerated, msg["name"])
		data, ok := msg["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, sheetID, data["sheetId"])
	}

	// Explicit catchup from the first event's ID returns only the last two.
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &firstEventID,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for _, sheetID := range []string{"sheet-1", "sheet-2"} {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		data, ok := msg["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, sheetID, data["sheetId"])
	}

	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}
