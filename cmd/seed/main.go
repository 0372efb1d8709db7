package main

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/starkdipesh/portfolio-api/internal/config"
	"github.com/starkdipesh/portfolio-api/internal/database"
	"github.com/starkdipesh/portfolio-api/internal/portfolio"
	"github.com/starkdipesh/portfolio-api/pkg/logger"
)

// Seeds the database with the initial portfolio content. Destructive: it
// drops the existing content collections first. Run once against a fresh
// deployment, or rerun to reset to the canonical dataset.
func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database(cfg.MongoDB.Database)
	now := time.Now().UTC()

	collections := []string{
		portfolio.CollectionPersonalInfo,
		portfolio.CollectionProjects,
		portfolio.CollectionWorkExperience,
		portfolio.CollectionTestimonials,
		portfolio.CollectionSkills,
		portfolio.CollectionApproach,
	}
	for _, name := range collections {
		if err := db.Collection(name).Drop(ctx); err != nil {
			logger.Fatalf("failed to drop %s: %v", name, err)
		}
	}

	seedPersonalInfo(ctx, db, now)
	seedProjects(ctx, db, now)
	seedWorkExperience(ctx, db, now)
	seedTestimonials(ctx, db, now)
	seedSkills(ctx, db, now)
	seedApproach(ctx, db, now)

	logger.Infof("database seeded: %s", cfg.MongoDB.Database)
}

func insertOne(ctx context.Context, db *mongo.Database, collection string, doc bson.M) {
	if _, err := db.Collection(collection).InsertOne(ctx, doc); err != nil {
		logger.Fatalf("failed to seed %s: %v", collection, err)
	}
}

func insertMany(ctx context.Context, db *mongo.Database, collection string, docs []interface{}) {
	if _, err := db.Collection(collection).InsertMany(ctx, docs); err != nil {
		logger.Fatalf("failed to seed %s: %v", collection, err)
	}
}

func seedPersonalInfo(ctx context.Context, db *mongo.Database, now time.Time) {
	insertOne(ctx, db, portfolio.CollectionPersonalInfo, bson.M{
		"name":        "Dipesh Patel",
		"title":       "Full Stack Developer & AI Engineer",
		"description": "I build intelligent web applications that combine modern frontend experiences with machine-learning backends.",
		"email":       "dipesh@example.com",
		"phone":       "+1 (555) 123-4567",
		"location":    "San Francisco, CA",
		"github":      "https://github.com/dipeshpatel",
		"linkedin":    "https://linkedin.com/in/dipeshpatel",
		"twitter":     "https://twitter.com/dipeshpatel",
		"updated_at":  now,
	})
}

func seedProjects(ctx context.Context, db *mongo.Database, now time.Time) {
	insertMany(ctx, db, portfolio.CollectionProjects, []interface{}{
		bson.M{
			"title":        "AI-Powered Analytics Dashboard",
			"description":  "Real-time analytics platform with ML-driven insights and anomaly detection for e-commerce metrics.",
			"technologies": []string{"React", "Python", "TensorFlow", "FastAPI", "MongoDB"},
			"github":       "https://github.com/dipeshpatel/analytics-dashboard",
			"demo":         "https://analytics.example.com",
			"featured":     true,
			"metrics": []bson.M{
				{"label": "Prediction accuracy", "value": "95%"},
				{"label": "Events/day", "value": "2M+"},
			},
			"created_at": now,
			"updated_at": now,
		},
		bson.M{
			"title":        "Distributed Task Queue",
			"description":  "Horizontally scalable job queue with priority scheduling, retries and dead-letter handling.",
			"technologies": []string{"Go", "Redis", "PostgreSQL", "Docker"},
			"github":       "https://github.com/dipeshpatel/taskqueue",
			"demo":         "",
			"featured":     true,
			"metrics": []bson.M{
				{"label": "Throughput", "value": "10k jobs/s"},
			},
			"created_at": now,
			"updated_at": now,
		},
		bson.M{
			"title":        "Portfolio CMS",
			"description":  "Headless content API powering this site, with token-gated editing and media storage.",
			"technologies": []string{"Go", "Gin", "MongoDB", "MinIO"},
			"github":       "https://github.com/dipeshpatel/portfolio-api",
			"demo":         "",
			"featured":     false,
			"metrics":      []bson.M{},
			"created_at":   now,
			"updated_at":   now,
		},
	})
}

func seedWorkExperience(ctx context.Context, db *mongo.Database, now time.Time) {
	insertMany(ctx, db, portfolio.CollectionWorkExperience, []interface{}{
		bson.M{
			"title":        "Senior Software Engineer",
			"company":      "TechCorp Inc.",
			"period":       "2022 - Present",
			"description":  "Lead development of ML-backed services handling millions of requests per day; mentor a team of four engineers.",
			"technologies": []string{"Go", "Python", "Kubernetes", "MongoDB"},
			"logo":         "",
			"color":        "#6366f1",
			"created_at":   now,
			"updated_at":   now,
		},
		bson.M{
			"title":        "Software Engineer",
			"company":      "StartupXYZ",
			"period":       "2020 - 2022",
			"description":  "Built the customer-facing web platform from scratch and scaled it to 100k monthly users.",
			"technologies": []string{"React", "Node.js", "PostgreSQL"},
			"logo":         "",
			"color":        "#22c55e",
			"created_at":   now,
			"updated_at":   now,
		},
	})
}

func seedTestimonials(ctx context.Context, db *mongo.Database, now time.Time) {
	insertMany(ctx, db, portfolio.CollectionTestimonials, []interface{}{
		bson.M{
			"name": "Sarah Chen", "position": "Engineering Manager", "company": "TechCorp Inc.",
			"content": "Dipesh consistently delivers high-quality work and elevates everyone around them.",
			"rating":  5, "created_at": now, "updated_at": now,
		},
		bson.M{
			"name": "Marcus Rivera", "position": "CTO", "company": "StartupXYZ",
			"content": "One of the most reliable engineers I have worked with. Ships fast without cutting corners.",
			"rating":  5, "created_at": now, "updated_at": now,
		},
		bson.M{
			"name": "Priya Sharma", "position": "Product Lead", "company": "TechCorp Inc.",
			"content": "Great communicator who translates vague product ideas into working software.",
			"rating":  5, "created_at": now, "updated_at": now,
		},
		bson.M{
			"name": "James Wilson", "position": "Freelance Client", "company": "Wilson Consulting",
			"content": "Delivered our project ahead of schedule and kept us informed the whole way.",
			"rating":  4, "created_at": now, "updated_at": now,
		},
	})
}

func seedSkills(ctx context.Context, db *mongo.Database, now time.Time) {
	insertOne(ctx, db, portfolio.CollectionSkills, bson.M{
		"skills": []bson.M{
			{"name": "Go", "level": 90},
			{"name": "Python", "level": 90},
			{"name": "JavaScript/TypeScript", "level": 85},
			{"name": "React", "level": 85},
			{"name": "MongoDB", "level": 80},
			{"name": "PostgreSQL", "level": 80},
			{"name": "Kubernetes", "level": 75},
			{"name": "Machine Learning", "level": 70},
		},
		"updated_at": now,
	})
}

func seedApproach(ctx context.Context, db *mongo.Database, now time.Time) {
	insertOne(ctx, db, portfolio.CollectionApproach, bson.M{
		"items": []bson.M{
			{"id": "discover", "title": "Discover", "description": "Understand the problem, the users and the constraints before writing any code."},
			{"id": "design", "title": "Design", "description": "Sketch the data model and API surface, then validate with stakeholders early."},
			{"id": "build", "title": "Build", "description": "Ship in small, tested increments with continuous integration from day one."},
			{"id": "iterate", "title": "Iterate", "description": "Measure real usage, gather feedback and refine until it feels effortless."},
		},
		"updated_at": now,
	})
}
