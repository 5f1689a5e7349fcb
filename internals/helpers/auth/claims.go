package helperAuth

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Locals keys hydrated by the auth middleware.
const (
	LocSchoolID  = "school_id"
	LocStaffID   = "staff_id"
	LocStaffRole = "staff_role"
)

// GetSchoolIDFromToken returns the tenant scope of the request.
// Every tenant-scoped query must carry this id explicitly.
func GetSchoolIDFromToken(c *fiber.Ctx) (int64, error) {
	id, ok := asInt64(c.Locals(LocSchoolID))
	if !ok || id <= 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "school scope missing from token")
	}
	return id, nil
}

// GetStaffIDFromToken returns the acting staff member (the "captured by" actor).
func GetStaffIDFromToken(c *fiber.Ctx) (int64, error) {
	id, ok := asInt64(c.Locals(LocStaffID))
	if !ok || id <= 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "staff identity missing from token")
	}
	return id, nil
}

func GetStaffRole(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocStaffRole).(string); ok {
		return s
	}
	return ""
}

func asInt64(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case float64:
		return int64(t), true
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
