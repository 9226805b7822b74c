package ws

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"yolearn/internal/domain/notification"
	"yolearn/internal/infrastructure/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-hub.done
	})
	return hub, cancel
}

func waitClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == want }, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(time.Second):
		t.Fatalf("no message delivered")
		return nil
	}
}

func TestHub_DeliversOnlyToRecipient(t *testing.T) {
	hub, _ := startHub(t)
	alice, bob := uuid.New(), uuid.New()

	aliceTab1 := NewClient(hub, nil, alice, nil)
	aliceTab2 := NewClient(hub, nil, alice, nil)
	bobTab := NewClient(hub, nil, bob, nil)
	hub.Register(aliceTab1)
	hub.Register(aliceTab2)
	hub.Register(bobTab)
	waitClients(t, hub, 3)

	hub.Deliver(alice, []byte("hello"))

	assert.Equal(t, "hello", string(receive(t, aliceTab1)))
	assert.Equal(t, "hello", string(receive(t, aliceTab2)))
	select {
	case msg := <-bobTab.send:
		t.Fatalf("unexpected delivery to bob: %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub, _ := startHub(t)
	c := NewClient(hub, nil, uuid.New(), nil)
	hub.Register(c)
	waitClients(t, hub, 1)

	hub.Unregister(c)
	waitClients(t, hub, 0)

	_, ok := <-c.send
	assert.False(t, ok)
}

func TestHub_StopClosesClients(t *testing.T) {
	hub, cancel := startHub(t)
	c := NewClient(hub, nil, uuid.New(), nil)
	hub.Register(c)
	waitClients(t, hub, 1)

	cancel()
	<-hub.done

	_, ok := <-c.send
	assert.False(t, ok)
	assert.Zero(t, hub.ClientCount())
	hub.Deliver(c.userID, []byte("late"))
}

func TestHub_RegisterDuringStopClosesEveryClient(t *testing.T) {
	hub, cancel := startHub(t)

	clients := make([]*Client, 50)
	var wg sync.WaitGroup
	for i := range clients {
		clients[i] = NewClient(hub, nil, uuid.New(), nil)
		wg.Add(1)
		go func(c *Client) {
			defer wg.Done()
			hub.Register(c)
		}(clients[i])
		if i == len(clients)/2 {
			cancel()
		}
	}
	wg.Wait()
	<-hub.done

	for _, c := range clients {
		select {
		case _, ok := <-c.send:
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatalf("send channel of %s left open", c.userID)
		}
	}
}

func TestHub_RegisterAfterStop(t *testing.T) {
	hub, cancel := startHub(t)
	cancel()
	<-hub.done

	c := NewClient(hub, nil, uuid.New(), nil)
	hub.Register(c)
	_, ok := <-c.send
	assert.False(t, ok)
}

func TestHubPublisher_EncodesEvent(t *testing.T) {
	hub, _ := startHub(t)
	recipient := uuid.New()
	c := NewClient(hub, nil, recipient, nil)
	hub.Register(c)
	waitClients(t, hub, 1)

	n := notification.Notification{ID: uuid.New(), RecipientID: recipient, Text: "Alex accepted", CreatedAt: time.Now().UTC()}
	require.NoError(t, NewHubPublisher(hub).Publish(context.Background(), n))

	var evt NotificationEvent
	require.NoError(t, json.Unmarshal(receive(t, c), &evt))
	assert.Equal(t, "notification", evt.Type)
	assert.Equal(t, n.ID, evt.ID)
	assert.Equal(t, "Alex accepted", evt.Text)
}

func TestSubscribe_RelaysToHub(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	hub, _ := startHub(t)
	recipient := uuid.New()
	c := NewClient(hub, nil, recipient, nil)
	hub.Register(c)
	waitClients(t, hub, 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Subscribe(ctx, client, hub, nil) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	require.Eventually(t, func() bool { return mr.PubSubNumPat() > 0 }, time.Second, 5*time.Millisecond)

	mr.Publish(Channel(recipient), "raw")
	assert.Equal(t, "raw", string(receive(t, c)))
}

// startRelay runs a relay with short backoff until the test ends.
func startRelay(t *testing.T, client *redis.Client, hub *Hub) *Relay {
	t.Helper()
	relay := NewRelay(client, hub, nil)
	relay.minBackoff = 10 * time.Millisecond
	relay.maxBackoff = 40 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		relay.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return relay
}

func TestRedisPublisher_ReachesOtherInstance(t *testing.T) {
	mr := miniredis.RunT(t)
	newClient := func() *redis.Client {
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		return client
	}

	hubA, _ := startHub(t)
	hubB, _ := startHub(t)
	clientA, clientB := newClient(), newClient()
	relayA := startRelay(t, clientA, hubA)
	relayB := startRelay(t, clientB, hubB)
	require.Eventually(t, func() bool { return relayA.Live() && relayB.Live() }, time.Second, 5*time.Millisecond)

	recipient := uuid.New()
	c := NewClient(hubB, nil, recipient, nil)
	hubB.Register(c)
	waitClients(t, hubB, 1)

	pub := NewRedisPublisher(cache.NewRedisFromClient(clientA, nil, time.Minute), hubA, relayA, nil)
	n := notification.Notification{ID: uuid.New(), RecipientID: recipient, Text: "ping", CreatedAt: time.Now().UTC()}
	require.NoError(t, pub.Publish(context.Background(), n))

	var evt NotificationEvent
	require.NoError(t, json.Unmarshal(receive(t, c), &evt))
	assert.Equal(t, n.ID, evt.ID)
}

func TestRelay_RetriesUntilRedisIsBack(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	hub, _ := startHub(t)
	recipient := uuid.New()
	c := NewClient(hub, nil, recipient, nil)
	hub.Register(c)
	waitClients(t, hub, 1)

	relay := startRelay(t, client, hub)
	pub := NewRedisPublisher(cache.NewRedisFromClient(client, nil, time.Minute), hub, relay, nil)

	time.Sleep(50 * time.Millisecond)
	assert.False(t, relay.Live())

	// Without a live relay the event must not vanish into Redis.
	require.NoError(t, pub.Publish(context.Background(), notification.Notification{ID: uuid.New(), RecipientID: recipient, Text: "while down"}))
	var evt NotificationEvent
	require.NoError(t, json.Unmarshal(receive(t, c), &evt))
	assert.Equal(t, "while down", evt.Text)

	require.NoError(t, mr.Restart())
	require.Eventually(t, relay.Live, 2*time.Second, 10*time.Millisecond)

	mr.Publish(Channel(recipient), "after restart")
	assert.Equal(t, "after restart", string(receive(t, c)))
}

func TestRedisPublisher_UnavailableDeliversLocally(t *testing.T) {
	hub, _ := startHub(t)
	recipient := uuid.New()
	c := NewClient(hub, nil, recipient, nil)
	hub.Register(c)
	waitClients(t, hub, 1)

	pub := NewRedisPublisher(cache.NewRedisFromClient(nil, nil, time.Minute), hub, nil, nil)
	require.NoError(t, pub.Publish(context.Background(), notification.Notification{ID: uuid.New(), RecipientID: recipient, Text: "local"}))

	var evt NotificationEvent
	require.NoError(t, json.Unmarshal(receive(t, c), &evt))
	assert.Equal(t, "local", evt.Text)
}
