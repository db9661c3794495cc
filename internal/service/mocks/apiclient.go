package mocks

import (
	"context"
	"sync"

	"github.com/CDavidSV/URL-shortener-api/internal/models"
)

// MockAPIClient implements apiclient.Client for testing
type MockAPIClient struct {
	mu sync.Mutex

	// Настраиваемые ответы
	LoginToken  string
	LoginErr    error
	SignupToken string
	SignupErr   error
	URLs        []models.ShortURLRecord
	FetchErr    error
	CreateErr   error
	DeleteErr   error

	// Записанные вызовы
	LoginCalls  []models.Credentials
	SignupCalls []models.SignupRequest
	FetchCalls  int
	Created     []models.CreateURLInput
	Deleted     []string
}

func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

func (m *MockAPIClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LoginCalls = append(m.LoginCalls, creds)
	if m.LoginErr != nil {
		return "", m.LoginErr
	}
	return m.LoginToken, nil
}

func (m *MockAPIClient) CreateAccount(ctx context.Context, signup models.SignupRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SignupCalls = append(m.SignupCalls, signup)
	if m.SignupErr != nil {
		return "", m.SignupErr
	}
	return m.SignupToken, nil
}

func (m *MockAPIClient) FetchURLs(ctx context.Context, token string) ([]models.ShortURLRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FetchCalls++
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	// возвращаем копию, чтобы тесты не меняли исходный срез
	urls := make([]models.ShortURLRecord, len(m.URLs))
	copy(urls, m.URLs)
	return urls, nil
}

func (m *MockAPIClient) CreateURL(ctx context.Context, token string, input models.CreateURLInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Created = append(m.Created, input)
	return nil
}

func (m *MockAPIClient) DeleteURL(ctx context.Context, token, backHalf string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Deleted = append(m.Deleted, backHalf)
	return nil
}

func (m *MockAPIClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LoginCalls = nil
	m.SignupCalls = nil
	m.FetchCalls = 0
	m.Created = nil
	m.Deleted = nil
}
