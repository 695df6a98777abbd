package httpapi

import (
	"net/http"

	postPort "postapi/internal/ports/post"
	userPort "postapi/internal/ports/user"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type PostController struct {
	pc      PostUseCase
	baseURL string
}

func NewPostController(pc PostUseCase, baseURL string) *PostController {
	return &PostController{pc: pc, baseURL: baseURL}
}

type createPostRequest struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
	User    *struct {
		Identifier string `json:"identifier" binding:"required,uuid"`
	} `json:"user"`
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req createPostRequest
	// اعتبارسنجی JSON ورودی
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	in := postPort.CreatePostInput{
		Title:   req.Title,
		Summary: req.Summary,
		Content: req.Content,
	}
	if req.User != nil {
		uid := uuid.FromStringOrNil(req.User.Identifier)
		in.UserID = &uid
	}

	created, err := ctl.pc.Save(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", requestBaseURL(c, ctl.baseURL)+"/api/posts/"+created.Identifier)
	c.Status(http.StatusCreated)
}

// GetAllPosts لیست کامل بدون لینک hypermedia
func (ctl *PostController) GetAllPosts(c *gin.Context) {
	posts, err := ctl.pc.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (ctl *PostController) GetPostByID(c *gin.Context) {
	id, err := parseID(c, "post")
	if err != nil {
		respondError(c, err)
		return
	}

	p, err := ctl.pc.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Resource[*postPort.PostDTO]{
		Data:  p,
		Links: ctl.allPostsLink(c),
	})
}

func (ctl *PostController) GetOwnerByPostID(c *gin.Context) {
	id, err := parseID(c, "post")
	if err != nil {
		respondError(c, err)
		return
	}

	owner, err := ctl.pc.FindOwnerByPostID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Resource[*userPort.UserDTO]{
		Data:  owner,
		Links: ctl.allPostsLink(c),
	})
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	id, err := parseID(c, "post")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ctl.pc.DeleteByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *PostController) allPostsLink(c *gin.Context) map[string]string {
	return map[string]string{relAllPosts: requestBaseURL(c, ctl.baseURL) + "/api/posts"}
}
