package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds starter content so a fresh deployment renders a complete site.
// Every write is an upsert keyed on a stable field, so re-running is safe.
func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Error("mongo connect failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Error("index setup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	now := time.Now().In(cfg.Timezone)
	upsert := options.Update().SetUpsert(true)

	seedAbout(ctx, log, cols.About, upsert, now)
	seedHeader(ctx, log, cols.Headers, upsert, now)
	seedSkills(ctx, log, cols.Skills, upsert, now)
	seedProjects(ctx, log, cols.Projects, upsert, now)
	seedAdmin(ctx, log, cols.Users, upsert, cfg.AdminEmail, cfg.AdminPassword, now)

	log.Info("seed complete")
}

func seedAbout(ctx context.Context, log *slog.Logger, col *mongo.Collection, upsert *options.UpdateOptions, now time.Time) {
	doc := bson.M{
		"_id":          primitive.NewObjectID().Hex(),
		"name":         "Harshit Sengar",
		"title":        "Full Stack Developer",
		"bio":          "I build web applications end to end, from data models to pixel-level UI.",
		"profileImage": "",
		"email":        "hello@example.com",
		"location":     "India",
		"resumeUrl":    "",
		"education": []bson.M{
			{
				"institution":  "Example University",
				"degree":       "B.Tech",
				"fieldOfStudy": "Computer Science",
				"startYear":   "2019",
				"endYear":     "2023",
				"current":     false,
			},
		},
		"experience": []bson.M{
			{
				"company":     "Example Studio",
				"position":    "Full Stack Developer",
				"startDate":   "2023-06",
				"current":     true,
				"description": "Building portfolio and commerce sites.",
			},
		},
		"createdAt": now,
		"updatedAt": now,
	}
	res, err := col.UpdateOne(ctx, bson.M{"name": doc["name"]}, bson.M{"$setOnInsert": doc}, upsert)
	if err != nil {
		log.Error("seed about failed", slog.String("error", err.Error()))
		return
	}
	log.Info("seed about", slog.Int64("upserted", upsertedCount(res)))
}

func seedHeader(ctx context.Context, log *slog.Logger, col *mongo.Collection, upsert *options.UpdateOptions, now time.Time) {
	doc := bson.M{
		"_id":              primitive.NewObjectID().Hex(),
		"title":            "Harshit Sengar",
		"subtitle":         "Full Stack Developer",
		"description":      "I design and ship web products.",
		"ctaText":          "View Projects",
		"ctaLink":          "/projects",
		"secondaryCtaText": "Contact Me",
		"secondaryCtaLink": "/contact",
		"bannerImage":      "",
		"totalProjects":    15,
		"experience":       2,
		"rating":           4.9,
		"reviewCount":      25,
		"createdAt":        now,
		"updatedAt":        now,
	}
	res, err := col.UpdateOne(ctx, bson.M{"title": doc["title"]}, bson.M{"$setOnInsert": doc}, upsert)
	if err != nil {
		log.Error("seed header failed", slog.String("error", err.Error()))
		return
	}
	log.Info("seed header", slog.Int64("upserted", upsertedCount(res)))
}

func seedSkills(ctx context.Context, log *slog.Logger, col *mongo.Collection, upsert *options.UpdateOptions, now time.Time) {
	skills := []bson.M{
		{"name": "React", "category": "Frontend", "proficiency": 90, "icon": ""},
		{"name": "Next.js", "category": "Frontend", "proficiency": 85, "icon": ""},
		{"name": "Go", "category": "Backend", "proficiency": 80, "icon": ""},
		{"name": "MongoDB", "category": "Database", "proficiency": 85, "icon": ""},
		{"name": "Tailwind CSS", "category": "Frontend", "proficiency": 90, "icon": ""},
	}
	var inserted int64
	for _, s := range skills {
		doc := bson.M{
			"_id":         primitive.NewObjectID().Hex(),
			"name":        s["name"],
			"category":    s["category"],
			"proficiency": s["proficiency"],
			"icon":        s["icon"],
			"createdAt":   now,
			"updatedAt":   now,
		}
		res, err := col.UpdateOne(ctx, bson.M{"name": s["name"], "category": s["category"]}, bson.M{"$setOnInsert": doc}, upsert)
		if err != nil {
			log.Error("seed skill failed", slog.String("name", s["name"].(string)), slog.String("error", err.Error()))
			continue
		}
		inserted += upsertedCount(res)
	}
	log.Info("seed skills", slog.Int64("upserted", inserted))
}

func seedProjects(ctx context.Context, log *slog.Logger, col *mongo.Collection, upsert *options.UpdateOptions, now time.Time) {
	projects := []bson.M{
		{
			"title":        "Portfolio Website",
			"description":  "Personal site with an admin dashboard for content management.",
			"image":        "",
			"technologies": []string{"Next.js", "Tailwind CSS", "MongoDB"},
			"category":     "Web",
			"githubUrl":    "https://github.com/example/portfolio",
			"demoUrl":      "",
			"featured":     true,
		},
		{
			"title":        "E-commerce Storefront",
			"description":  "Product catalog with cart and checkout.",
			"image":        "",
			"technologies": []string{"React", "Go", "MongoDB"},
			"category":     "Web",
			"githubUrl":    "",
			"demoUrl":      "",
			"featured":     false,
		},
	}
	var inserted int64
	for _, p := range projects {
		doc := bson.M{
			"_id":          primitive.NewObjectID().Hex(),
			"title":        p["title"],
			"description":  p["description"],
			"image":        p["image"],
			"technologies": p["technologies"],
			"category":     p["category"],
			"githubUrl":    p["githubUrl"],
			"demoUrl":      p["demoUrl"],
			"featured":     p["featured"],
			"createdAt":    now,
			"updatedAt":    now,
		}
		res, err := col.UpdateOne(ctx, bson.M{"title": p["title"]}, bson.M{"$setOnInsert": doc}, upsert)
		if err != nil {
			log.Error("seed project failed", slog.String("title", p["title"].(string)), slog.String("error", err.Error()))
			continue
		}
		inserted += upsertedCount(res)
	}
	log.Info("seed projects", slog.Int64("upserted", inserted))
}

func seedAdmin(ctx context.Context, log *slog.Logger, col *mongo.Collection, upsert *options.UpdateOptions, email, password string, now time.Time) {
	if email == "" || password == "" {
		log.Warn("seed admin skipped, ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Error("seed admin hash failed", slog.String("error", err.Error()))
		return
	}
	doc := bson.M{
		"_id":          primitive.NewObjectID().Hex(),
		"email":        email,
		"passwordHash": hash,
		"role":         "admin",
		"createdAt":    now,
		"updatedAt":    now,
	}
	res, err := col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$setOnInsert": doc}, upsert)
	if err != nil {
		log.Error("seed admin failed", slog.String("error", err.Error()))
		return
	}
	log.Info("seed admin", slog.String("email", email), slog.Int64("upserted", upsertedCount(res)))
}

func upsertedCount(res *mongo.UpdateResult) int64 {
	if res == nil {
		return 0
	}
	return res.UpsertedCount
}
