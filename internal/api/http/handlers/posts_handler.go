package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/post-service/internal/api/dto"
	"github.com/spec-kit/post-service/internal/auth"
	"github.com/spec-kit/post-service/internal/service"
	apperrors "github.com/spec-kit/post-service/pkg/util"
)

// PostsHandler manages post endpoints. Reads are public; mutations sit behind
// the authentication gate and take the author from the request identity, never
// from the body.
type PostsHandler struct {
	posts *service.PostService
}

// NewPostsHandler constructs handler.
func NewPostsHandler(postService *service.PostService) *PostsHandler {
	return &PostsHandler{posts: postService}
}

// List handles GET /api/post/getall/:page.
func (h *PostsHandler) List(c *fiber.Ctx) error {
	page, err := strconv.ParseInt(c.Params("page"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid page", nil)
	}

	posts, err := h.posts.List(c.UserContext(), page)
	if err != nil {
		return err
	}

	items := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		items = append(items, postResponse(&posts[i]))
	}
	return c.JSON(fiber.Map{"status": "success", "data": items})
}

// Get handles GET /api/post/detail/:id.
func (h *PostsHandler) Get(c *fiber.Ctx) error {
	id, err := parsePostID(c)
	if err != nil {
		return err
	}

	post, err := h.posts.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "data": postResponse(post)})
}

// Create handles POST /api/post.
func (h *PostsHandler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("invalid or missing token")
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(err)
	}

	post, err := h.posts.Create(c.UserContext(), identity.SubjectID, service.PostCreateInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"status": "success", "data": postResponse(post)})
}

// Update handles PATCH /api/post/:id.
func (h *PostsHandler) Update(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("invalid or missing token")
	}

	id, err := parsePostID(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(err)
	}

	post, err := h.posts.Update(c.UserContext(), identity.SubjectID, id, service.PostUpdateInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "data": postResponse(post)})
}

// Delete handles DELETE /api/post/:id.
func (h *PostsHandler) Delete(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("invalid or missing token")
	}

	id, err := parsePostID(c)
	if err != nil {
		return err
	}

	if err := h.posts.Delete(c.UserContext(), identity.SubjectID, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "message": "post deleted"})
}

func parsePostID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid post id", nil)
	}
	return id, nil
}
