package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/vendordesk/vendordesk/internal/pkg/cloudfolder"
	"github.com/vendordesk/vendordesk/internal/pkg/dataset"
	"github.com/vendordesk/vendordesk/internal/pkg/session"
)

const (
	DATASET_KEY string = "dataset_id"

	formDateLayout = "2006-01-02"
)

var (
	registry      *dataset.Registry
	sharedStore   dataset.EntityStore
	folderManager cloudfolder.Manager = cloudfolder.Disabled{}
)

// Setup wires the controllers to their backing stores. With a shared store
// every request works against the same database; without one each session
// gets its own seeded in-memory dataset from the registry.
func Setup(reg *dataset.Registry, shared dataset.EntityStore, folders cloudfolder.Manager) {
	registry = reg
	sharedStore = shared
	if folders != nil {
		folderManager = folders
	}
}

// StoreFor resolves the entity store for the current request along with the
// dataset handle used for cache keys.
func StoreFor(c *fiber.Ctx) (dataset.EntityStore, string) {
	if sharedStore != nil {
		return sharedStore, "global"
	}
	return registry.Get(datasetHandle(c)), datasetHandle(c)
}

// datasetHandle returns the session's dataset handle, minting one on first
// use so a fresh browser session starts from the sample data.
func datasetHandle(c *fiber.Ctx) string {
	if handle := session.GetSessionValue(c, DATASET_KEY); handle != "" {
		return handle
	}
	handle := uuid.New().String()
	if err := session.SetSessionValue(c, DATASET_KEY, handle); err != nil {
		// no session, fall back to a shared anonymous dataset
		return "anonymous"
	}
	return handle
}

// resetDataset discards the session's dataset so the next request reseeds.
func resetDataset(c *fiber.Ctx) {
	if sharedStore != nil || registry == nil {
		return
	}
	registry.Drop(datasetHandle(c))
}

func idParam(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// setIfPresent points dst at the form value when the field was submitted
// non-empty, leaving absent fields out of the partial update.
func setIfPresent(c *fiber.Ctx, field string, dst **string) {
	if raw := c.FormValue(field); raw != "" {
		v := raw
		*dst = &v
	}
}

// parseQueryDate reads a yyyy-mm-dd query value; empty means the zero time.
func parseQueryDate(c *fiber.Ctx, key string) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(formDateLayout, raw)
}

// parseFormDate reads a yyyy-mm-dd form value; empty means the zero time.
func parseFormDate(c *fiber.Ctx, field string) (time.Time, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(formDateLayout, raw)
}

func parseFormFloat(c *fiber.Ctx, field string) (float64, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func parseFormInt(c *fiber.Ctx, field string) (int, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func parseFormUint(c *fiber.Ctx, field string) (uint, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// queryValues splits a repeatable query parameter that may arrive either as
// status=a&status=b or status=a,b.
func queryValues(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range strings.Split(c.Query(key), ",") {
		if v := strings.TrimSpace(raw); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func errorMap(message string) fiber.Map {
	return fiber.Map{"type": "error", "message": message}
}

func successMap(message string) fiber.Map {
	return fiber.Map{"type": "success", "message": message}
}
