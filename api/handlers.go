package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Detailed CPU endpoint: aggregate percent plus the per-core breakdown.
func (s *Server) getCPU(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	total, err := s.stats.Aggregate(ctx)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	percpu, err := s.stats.PerCPU(ctx)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"total":  total,
		"key":    s.stats.KeyName(),
		"percpu": percpu,
	})
}

// Per-core endpoint
func (s *Server) getPerCPU(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	percpu, err := s.stats.PerCPU(ctx)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(percpu)
}

// CPU info endpoint
func (s *Server) getCPUInfo(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	info, err := s.stats.Info(ctx)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(info)
}

// Quicklook endpoint: the compact dashboard view, served from the same
// cache as the detailed view.
func (s *Server) getQuicklook(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	total, err := s.stats.Aggregate(ctx)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	info, err := s.stats.Info(ctx)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"cpu":            total,
		"cpu_name":       info.Name,
		"cpu_hz_current": info.HzCurrent,
		"cpu_hz_max":     info.HzMax,
	})
}
