package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  email      TEXT        NOT NULL UNIQUE,
  full_name  TEXT        NOT NULL DEFAULT '',
  headline   TEXT        NOT NULL DEFAULT '',
  location   TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_business_plans",
		SQL: `CREATE TABLE IF NOT EXISTS business_plans (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id    UUID        NOT NULL,
  title      TEXT        NOT NULL,
  industry   TEXT        NOT NULL,
  status     TEXT        NOT NULL DEFAULT 'draft' CHECK (status IN ('draft', 'complete')),
  profile    JSONB       NOT NULL,
  sections   JSONB       NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_business_plans_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_business_plans_user_id ON business_plans (user_id);`,
	},
	{
		Name: "create_index_business_plans_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_business_plans_created_at ON business_plans (created_at);`,
	},
	{
		Name: "create_table_courses",
		SQL: `CREATE TABLE IF NOT EXISTS courses (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title            TEXT        NOT NULL,
  description      TEXT        NOT NULL,
  category         TEXT        NOT NULL,
  level            TEXT        NOT NULL,
  duration_minutes INTEGER     NOT NULL CHECK (duration_minutes >= 0),
  lessons          INTEGER     NOT NULL CHECK (lessons >= 0),
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_courses_category",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_courses_category ON courses (category);`,
	},
	{
		Name: "create_table_enrollments",
		SQL: `CREATE TABLE IF NOT EXISTS enrollments (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id      UUID        NOT NULL,
  course_id    UUID        NOT NULL REFERENCES courses (id) ON DELETE CASCADE,
  progress     INTEGER     NOT NULL DEFAULT 0 CHECK (progress BETWEEN 0 AND 100),
  completed_at TIMESTAMPTZ,
  enrolled_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (user_id, course_id)
);`,
	},
	{
		Name: "create_table_chat_messages",
		SQL: `CREATE TABLE IF NOT EXISTS chat_messages (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id    UUID        NOT NULL,
  role       TEXT        NOT NULL CHECK (role IN ('user', 'assistant')),
  content    TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_chat_messages_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_chat_messages_user_id ON chat_messages (user_id, created_at);`,
	},
	{
		Name: "seed_courses",
		SQL: `INSERT INTO courses (title, description, category, level, duration_minutes, lessons)
SELECT * FROM (VALUES
  ('Business Fundamentals', 'Core concepts every founder needs: value propositions, customers, and unit economics.', 'fundamentals', 'beginner', 180, 12),
  ('Writing a Business Plan', 'From executive summary to appendices: structure, research, and financial projections.', 'planning', 'beginner', 240, 16),
  ('Market Research Essentials', 'Sizing markets, segmenting audiences, and validating demand before you build.', 'marketing', 'intermediate', 150, 10),
  ('Marketing & Sales Strategy', 'Positioning, channels, funnels, and the basics of a repeatable sales process.', 'marketing', 'intermediate', 210, 14),
  ('Financial Projections 101', 'Revenue models, cost structure, break-even analysis, and cash-flow forecasting.', 'finance', 'intermediate', 180, 12),
  ('Risk & Resilience', 'Identifying business risks and building mitigation and contingency plans.', 'operations', 'advanced', 120, 8)
) AS seed (title, description, category, level, duration_minutes, lessons)
WHERE NOT EXISTS (SELECT 1 FROM courses);`,
	},
}

// EnsureMigrated checks if the 'business_plans' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.business_plans') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
