package handlers

import (
	"freezer-tracker/domain"
	"freezer-tracker/internal/api/presenters"
	"freezer-tracker/pkg/stats"

	"github.com/gofiber/fiber/v2"
)

type (
	StatsHandler interface {
		GetStats(c *fiber.Ctx) error
	}

	statsHandler struct {
		statsService stats.StatsService
	}
)

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandler{statsService: statsService}
}

func (h *statsHandler) GetStats(c *fiber.Ctx) error {
	res, err := h.statsService.GetStats(c.Context())
	if err != nil {
		return respondError(c, domain.MessageFailedGetStats, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}
