package httpapi

import (
	"context"

	"postapi/internal/adapters/httpapi/middleware"
	postPort "postapi/internal/ports/post"
	userPort "postapi/internal/ports/user"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// PostUseCase: اینترفیسِ لازم برای کنترلر پست (Inbound Port)
type PostUseCase interface {
	Save(ctx context.Context, in postPort.CreatePostInput) (*postPort.PostDTO, error)
	FindAll(ctx context.Context) ([]*postPort.PostDTO, error)
	FindByID(ctx context.Context, id uuid.UUID) (*postPort.PostDTO, error)
	FindOwnerByPostID(ctx context.Context, id uuid.UUID) (*userPort.UserDTO, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type UserUseCase interface {
	RegisterUser(ctx context.Context, name, username string) (*userPort.UserDTO, error)
	FindByID(ctx context.Context, id uuid.UUID) (*userPort.UserDTO, error)
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(
	postUC PostUseCase,
	userUC UserUseCase,
	baseURL string,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), middleware.Recovery(logger))

	pc := NewPostController(postUC, baseURL)
	uc := NewUserController(userUC, baseURL)

	posts := r.Group("/api/posts")
	posts.POST("", pc.CreatePost)
	posts.GET("", pc.GetAllPosts)
	posts.GET("/:id", pc.GetPostByID)
	posts.GET("/:id/owner", pc.GetOwnerByPostID)
	posts.DELETE("/:id", pc.DeletePost)

	users := r.Group("/api/users")
	users.POST("", uc.RegisterUser)
	users.GET("/:id", uc.GetUserByID)

	return r
}
