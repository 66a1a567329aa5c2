package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/MKhiriev/yobo-blog/internal/metrics"
	"github.com/MKhiriev/yobo-blog/internal/utils"
	"github.com/MKhiriev/yobo-blog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	filter := models.ListPostsFilter{ViewerID: userID}
	if raw := r.URL.Query().Get("mine"); raw != "" {
		mine, err := strconv.ParseBool(raw)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "query parameter `mine` must be a boolean")
			return
		}
		filter.OnlyOwned = mine
	}

	posts, err := h.services.BlogService.List(ctx, filter)
	if err != nil {
		writeError(w, r, "Handler.listPosts", err)
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPostByID(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	post, err := h.services.BlogService.GetByID(ctx, userID, postID)
	if err != nil {
		writeError(w, r, "Handler.getPostByID", err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) getPostBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	post, err := h.services.BlogService.GetBySlug(ctx, userID, chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, "Handler.getPostBySlug", err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var in models.BlogPostInput
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		log.Debug().Err(err).Msg(invalidJSONMessage)
		writeMessage(w, http.StatusBadRequest, invalidJSONMessage)
		return
	}

	post, err := h.services.BlogService.Create(ctx, userID, in)
	if err != nil {
		writeError(w, r, "Handler.createPost", err)
		return
	}
	h.metrics.RecordPost(metrics.PostCreate)

	w.Header().Set("Location", fmt.Sprintf("/api/blog/%d", post.ID))
	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	log := logger.FromRequest(r)
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var in models.BlogPostInput
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		log.Debug().Err(err).Msg(invalidJSONMessage)
		writeMessage(w, http.StatusBadRequest, invalidJSONMessage)
		return
	}

	post, err := h.services.BlogService.Update(ctx, userID, postID, in)
	if err != nil {
		writeError(w, r, "Handler.updatePost", err)
		return
	}
	h.metrics.RecordPost(metrics.PostUpdate)

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	if err := h.services.BlogService.Delete(ctx, userID, postID); err != nil {
		writeError(w, r, "Handler.deletePost", err)
		return
	}
	h.metrics.RecordPost(metrics.PostDelete)

	w.WriteHeader(http.StatusNoContent)
}

// postIDParam parses the {id} path segment. Anything that is not a positive
// integer cannot name a post, so the response is 404.
func postIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || postID <= 0 {
		writeMessage(w, http.StatusNotFound, "post not found")
		return 0, false
	}
	return postID, true
}
