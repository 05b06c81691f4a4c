package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kheobs/labsite/pkg/common/errcode"
	"github.com/kheobs/labsite/pkg/model"
	"github.com/kheobs/labsite/pkg/utils/ginx"
)

// ListProjectsAPI GET /apis/projects?search=&status=
func (h *Handler) ListProjectsAPI(c *gin.Context) {
	var query model.ProjectQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.Validation, err.Error())
		return
	}
	ginx.SetResp(c, http.StatusOK, ginx.Paginate(c, h.Content.ListProjects(query)))
}

// ListPublicationsAPI GET /apis/publications?search=&year=&type=
func (h *Handler) ListPublicationsAPI(c *gin.Context) {
	var query model.PublicationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.Validation, err.Error())
		return
	}
	ginx.SetResp(c, http.StatusOK, ginx.Paginate(c, h.Content.ListPublications(query)))
}

// ListNewsAPI GET /apis/news?search=&category=
func (h *Handler) ListNewsAPI(c *gin.Context) {
	var query model.NewsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.Validation, err.Error())
		return
	}
	ginx.SetResp(c, http.StatusOK, ginx.Paginate(c, h.Content.ListNews(query)))
}

// ListToolsAPI GET /apis/tools?search=&category=
func (h *Handler) ListToolsAPI(c *gin.Context) {
	var query model.ToolQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.Validation, err.Error())
		return
	}
	ginx.SetResp(c, http.StatusOK, ginx.Paginate(c, h.Content.ListTools(query)))
}

// LikeNews 点赞新闻（同一 IP 30 分钟内只统计一次）
func (h *Handler) LikeNews(c *gin.Context) {
	id, ok := ginx.GetIntParam(c, "id")
	if !ok || h.Content.Snapshot().News.GetByID(id) == nil {
		ginx.SetErrResp(c, http.StatusNotFound, errcode.NotFound, "news not found")
		return
	}

	ctx := c.Request.Context()
	counted, err := h.Engagement.Like(ctx, id, ginx.GetClientIP(c), ginx.GetClientID(c))
	if err != nil {
		logError(c, err, "like news failed")
		ginx.SetErrResp(c, http.StatusInternalServerError, errcode.Unknown, err.Error())
		return
	}
	likes, err := h.Engagement.Likes(ctx, id)
	if err != nil {
		logError(c, err, "count news likes failed")
		ginx.SetErrResp(c, http.StatusInternalServerError, errcode.Unknown, err.Error())
		return
	}
	ginx.SetResp(c, http.StatusOK, gin.H{"counted": counted, "likes": likes})
}
