package handler

import (
	"Prism/internal/api/dto"
	"Prism/internal/model"
	"Prism/internal/pkg/field"
	"Prism/internal/pkg/response"
	"Prism/internal/service"

	"github.com/gin-gonic/gin"
)

const defaultPostLimit = 10

type DashboardHandler struct {
	dashboardSvc service.DashboardService
	auditSvc     service.AuditService
}

func NewDashboardHandler(dashboardSvc service.DashboardService, auditSvc service.AuditService) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc: dashboardSvc,
		auditSvc:     auditSvc,
	}
}

func (s *DashboardHandler) GetDashboard(c *gin.Context) {
	var req dto.DashboardQueryDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	dashboard, err := s.dashboardSvc.Build(c.Request.Context(), service.DashboardOptions{
		DateOrder: field.DateOrder(req.DateOrder),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	out, err := dto.NewDashboardDTO(dashboard)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, out)
}

func (s *DashboardHandler) GetValidation(c *gin.Context) {
	report, err := s.dashboardSvc.Validate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

func (s *DashboardHandler) GetPosts(c *gin.Context) {
	var req dto.PostQueryDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	if req.Limit == 0 {
		req.Limit = defaultPostLimit
	}
	if req.Sort == "" {
		req.Sort = string(service.SortImpressions)
	}

	posts, err := s.dashboardSvc.Posts(c.Request.Context(), service.PostQuery{
		Platform:  model.Platform(req.Platform),
		Sort:      service.PostSort(req.Sort),
		Limit:     req.Limit,
		DateOrder: field.DateOrder(req.DateOrder),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.PostListDTO{
		Platform: req.Platform,
		Sort:     req.Sort,
		Posts:    posts,
	})
}

func (s *DashboardHandler) GetLastAudit(c *gin.Context) {
	record, err := s.auditSvc.Last(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, record)
}
