package api

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/service/pubsub"
	"github.com/acadify/acadify-api/pkg/logger"
)

type WebSocketHandlerTestSuite struct {
	suite.Suite
	handler *WebSocketHandler
}

func TestWebSocketHandler(t *testing.T) {
	suite.Run(t, new(WebSocketHandlerTestSuite))
}

func (s *WebSocketHandlerTestSuite) SetupTest() {
	log := logger.NewLogger("test")
	ps := pubsub.NewRedisPubSub(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), log)
	s.handler = NewWebSocketHandler(NewBaseHandler(log), log, ps)
	go s.handler.Start()
}

func (s *WebSocketHandlerTestSuite) TearDownTest() {
	s.handler.Stop()
}

func (s *WebSocketHandlerTestSuite) addClient(scope string, buffer int) *streamClient {
	client := &streamClient{scope: scope, send: make(chan []byte, buffer)}
	s.handler.register <- client
	return client
}

func (s *WebSocketHandlerTestSuite) waitClosed(client *streamClient) {
	for {
		select {
		case _, ok := <-client.send:
			if !ok {
				return
			}
		case <-time.After(time.Second):
			s.FailNow("client was not dropped")
		}
	}
}

func (s *WebSocketHandlerTestSuite) TestBroadcastReachesScopedClients() {
	tenant := s.addClient("tenant-1", 4)
	other := s.addClient("tenant-2", 4)
	platform := s.addClient(pubsub.AllTenants, 4)

	s.handler.handleEvent(&dto.BillingEvent{TenantID: "tenant-1", BillingID: "billing-1"})

	select {
	case message := <-tenant.send:
		var event dto.BillingEvent
		s.NoError(json.Unmarshal(message, &event))
		s.Equal("billing-1", event.BillingID)
	case <-time.After(time.Second):
		s.FailNow("tenant client never received the event")
	}

	select {
	case <-platform.send:
	case <-time.After(time.Second):
		s.FailNow("platform client never received the event")
	}

	select {
	case <-other.send:
		s.FailNow("event leaked to another tenant's client")
	default:
	}
}

func (s *WebSocketHandlerTestSuite) TestSlowConsumerIsDroppedNotPanicked() {
	fast := s.addClient("tenant-1", 4)
	slow := s.addClient("tenant-1", 1)

	// Fill the slow client's buffer so the next broadcast cannot deliver.
	s.handler.handleEvent(&dto.BillingEvent{TenantID: "tenant-1", BillingID: "billing-1"})
	s.handler.handleEvent(&dto.BillingEvent{TenantID: "tenant-1", BillingID: "billing-2"})

	s.waitClosed(slow)

	select {
	case message, ok := <-fast.send:
		s.True(ok)
		s.NotEmpty(message)
	case <-time.After(time.Second):
		s.FailNow("fast client lost its messages")
	}
}

func (s *WebSocketHandlerTestSuite) TestConcurrentBroadcastsDropSlowClientsSafely() {
	slow := make([]*streamClient, 0, 8)
	for i := 0; i < 8; i++ {
		client := s.addClient("tenant-1", 1)
		client.send <- []byte("backlog")
		slow = append(slow, client)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handler.handleEvent(&dto.BillingEvent{TenantID: "tenant-1", BillingID: "billing"})
		}()
	}
	wg.Wait()

	for _, client := range slow {
		s.waitClosed(client)
	}
}
