package http

import (
	"context"

	"github.com/MKhiriev/yobo-blog/internal/config"
	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/MKhiriev/yobo-blog/internal/service"
	"github.com/MKhiriev/yobo-blog/models"
	"github.com/prometheus/client_golang/prometheus"
)

type mockAuthService struct {
	registerFunc   func(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	loginFunc      func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	parseTokenFunc func(ctx context.Context, tokenString string) (models.Principal, error)
	meFunc         func(ctx context.Context, userID string) (models.Principal, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return m.registerFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return m.loginFunc(ctx, req)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	return m.parseTokenFunc(ctx, tokenString)
}

func (m *mockAuthService) Me(ctx context.Context, userID string) (models.Principal, error) {
	return m.meFunc(ctx, userID)
}

type mockBlogService struct {
	createFunc    func(ctx context.Context, authorID string, in models.BlogPostInput) (models.BlogPost, error)
	updateFunc    func(ctx context.Context, requesterID string, postID int64, in models.BlogPostInput) (models.BlogPost, error)
	deleteFunc    func(ctx context.Context, requesterID string, postID int64) error
	listFunc      func(ctx context.Context, filter models.ListPostsFilter) ([]models.BlogPost, error)
	getBySlugFunc func(ctx context.Context, viewerID, slug string) (models.BlogPost, error)
	getByIDFunc   func(ctx context.Context, viewerID string, postID int64) (models.BlogPost, error)
}

func (m *mockBlogService) Create(ctx context.Context, authorID string, in models.BlogPostInput) (models.BlogPost, error) {
	return m.createFunc(ctx, authorID, in)
}

func (m *mockBlogService) Update(ctx context.Context, requesterID string, postID int64, in models.BlogPostInput) (models.BlogPost, error) {
	return m.updateFunc(ctx, requesterID, postID, in)
}

func (m *mockBlogService) Delete(ctx context.Context, requesterID string, postID int64) error {
	return m.deleteFunc(ctx, requesterID, postID)
}

func (m *mockBlogService) List(ctx context.Context, filter models.ListPostsFilter) ([]models.BlogPost, error) {
	return m.listFunc(ctx, filter)
}

func (m *mockBlogService) GetBySlug(ctx context.Context, viewerID, slug string) (models.BlogPost, error) {
	return m.getBySlugFunc(ctx, viewerID, slug)
}

func (m *mockBlogService) GetByID(ctx context.Context, viewerID string, postID int64) (models.BlogPost, error) {
	return m.getByIDFunc(ctx, viewerID, postID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

const (
	testToken  = "valid-token"
	testUserID = "5f0c2a4e-8d7b-4c1e-9a3f-1b2c3d4e5f60"
)

// acceptingAuth accepts testToken only.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFunc: func(_ context.Context, tokenString string) (models.Principal, error) {
			if tokenString != testToken {
				return models.Principal{}, service.ErrInvalidToken
			}
			return models.Principal{UserID: testUserID, Email: "ann@example.com"}, nil
		},
	}
}

func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "1.0.0"}
	}
	return NewHandler(services, config.Server{}, prometheus.NewRegistry(), logger.Nop())
}
