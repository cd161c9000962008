package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/websocket/v2"
)

const (
	notificationHistoryKey = "notifications:history"
	notificationChannel    = "notifications"
	notificationHistoryMax = 100
)

// Notifier is the user notification channel: transient success/error toasts
// emitted after each completed operation.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type Notification struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// WSConn is the slice of the WebSocket connection the hub needs.
type WSConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// NotificationService broadcasts toasts to connected WebSocket clients and
// mirrors them to Redis (capped history list plus pub/sub channel).
// The Redis client may be nil; broadcasting then stays in-process only.
type NotificationService struct {
	redisClient *redis.Client
	clients     map[WSConn]bool
	mu          sync.Mutex
}

func NewNotificationService(redisClient *redis.Client) *NotificationService {
	return &NotificationService{
		redisClient: redisClient,
		clients:     make(map[WSConn]bool),
	}
}

func (s *NotificationService) Success(message string) {
	s.notify("success", message)
}

func (s *NotificationService) Error(message string) {
	s.notify("error", message)
}

func (s *NotificationService) notify(level, message string) {
	notification := Notification{Level: level, Message: message, Time: time.Now()}
	data, err := json.Marshal(notification)
	if err != nil {
		log.Println("Failed to marshal notification:", err)
		return
	}

	s.broadcast(data)

	if s.redisClient == nil {
		return
	}
	ctx := context.Background()
	if err := s.redisClient.RPush(ctx, notificationHistoryKey, data).Err(); err != nil {
		log.Println("Failed to append notification history:", err)
		return
	}
	if err := s.redisClient.LTrim(ctx, notificationHistoryKey, -notificationHistoryMax, -1).Err(); err != nil {
		log.Println("Failed to trim notification history:", err)
	}
	if err := s.redisClient.Publish(ctx, notificationChannel, data).Err(); err != nil {
		log.Println("Failed to publish notification:", err)
	}
}

func (s *NotificationService) broadcast(message []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for client := range s.clients {
		if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Println("Error sending notification:", err)
			client.Close()
			delete(s.clients, client)
		}
	}
}

// Subscribe registers a WebSocket client for toast broadcasts.
func (s *NotificationService) Subscribe(conn WSConn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients[conn] = true
	log.Println("Client subscribed to notifications")
}

func (s *NotificationService) RemoveClient(conn WSConn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clients[conn]; exists {
		delete(s.clients, conn)
		log.Println("Client removed from notifications")
	}
}

// Recent returns up to n toasts from the Redis-backed history, oldest first.
func (s *NotificationService) Recent(n int64) ([]Notification, error) {
	if s.redisClient == nil {
		return []Notification{}, nil
	}
	data, err := s.redisClient.LRange(context.Background(), notificationHistoryKey, -n, -1).Result()
	if err != nil {
		return nil, err
	}
	notifications := []Notification{}
	for _, item := range data {
		var notification Notification
		if err := json.Unmarshal([]byte(item), &notification); err == nil {
			notifications = append(notifications, notification)
		}
	}
	return notifications, nil
}
