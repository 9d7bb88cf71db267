package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"bizgenius/internal/service"
)

// Services groups the injected use-case implementations for route registration.
type Services struct {
	Plans    service.PlanService
	Chat     service.ChatService
	Courses  service.CourseService
	Progress service.ProgressService
	Users    service.UserService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint checks DB connectivity; healthz is a bare liveness probe
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Business plans
	app.Post("/plans", GeneratePlan(svcs.Plans))
	app.Get("/plans", ListPlans(svcs.Plans))
	app.Get("/plans/:id", GetPlan(svcs.Plans))
	app.Post("/plans/:id/revisions", RevisePlan(svcs.Plans))
	app.Patch("/plans/:id/status", SetPlanStatus(svcs.Plans))
	app.Delete("/plans/:id", DeletePlan(svcs.Plans))
	app.Get("/plans/:id/export", ExportPlan(svcs.Plans))

	// Mentor chat
	app.Post("/chat/messages", SendChatMessage(svcs.Chat))
	app.Get("/chat/messages", ChatHistory(svcs.Chat))
	app.Delete("/chat/messages", ClearChat(svcs.Chat))

	// Course catalog and learning progress
	app.Get("/courses", ListCourses(svcs.Courses))
	app.Get("/courses/:id", GetCourse(svcs.Courses))
	app.Post("/courses/:id/enroll", EnrollCourse(svcs.Progress))
	app.Patch("/courses/:id/progress", UpdateCourseProgress(svcs.Progress))
	app.Get("/progress", ProgressOverview(svcs.Progress))

	// Profile
	app.Get("/profile", GetProfile(svcs.Users))
	app.Patch("/profile", UpdateProfile(svcs.Users))
}
