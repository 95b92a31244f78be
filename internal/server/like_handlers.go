// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// ToggleLike handles POST /api/likes/:postId
// @Summary Toggle a like on a post
// @Description Creates the like when absent (201), removes it when present (200)
// @Tags likes
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} object{liked=bool,message=string}
// @Success 201 {object} object{liked=bool,message=string}
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /likes/{postId} [post]
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	postID, ok := s.parseID(c, "postId")
	if !ok {
		return nil
	}

	liked, err := s.likeService.ToggleLike(c.Context(), currentUserID(c), postID)
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	message := "Like removed"
	if liked {
		status = fiber.StatusCreated
		message = "Post liked"
	}
	return c.Status(status).JSON(fiber.Map{
		"liked":   liked,
		"message": message,
	})
}

// GetLikes handles GET /api/likes/:postId
// @Summary List likes for a post
// @Tags likes
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} object{count=int,likes=[]models.Like}
// @Failure 404 {object} models.ErrorResponse
// @Router /likes/{postId} [get]
func (s *Server) GetLikes(c *fiber.Ctx) error {
	postID, ok := s.parseID(c, "postId")
	if !ok {
		return nil
	}

	likes, err := s.likeService.ListLikes(c.Context(), postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"count": len(likes),
		"likes": likes,
	})
}
