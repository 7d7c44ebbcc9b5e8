package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"marketplace/internal/config"
	"marketplace/internal/db"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

type seedUser struct {
	Email    string
	Username string
	FullName string
	Password string
	IsAdmin  bool
}

type seedCategory struct {
	Name        string
	Description string
	ImageURL    string
}

type seedProduct struct {
	Name          string
	Description   string
	Price         float64
	StockQuantity int
	Category      string
}

var seedUsers = []seedUser{
	{
		Email:    "admin@toysmarketplace.com",
		Username: "admin",
		FullName: "Admin User",
		Password: "admin123",
		IsAdmin:  true,
	},
	{
		Email:    "user@toysmarketplace.com",
		Username: "user",
		FullName: "Regular User",
		Password: "user123",
	},
}

var seedCategories = []seedCategory{
	{
		Name:        "Action Figures",
		Description: "Collectible action figures and superhero toys",
		ImageURL:    "https://images.unsplash.com/photo-1566576912321-d58ddd7a6088?w=400&h=300&fit=crop",
	},
	{
		Name:        "Building Blocks",
		Description: "LEGO sets, building blocks, and construction toys",
		ImageURL:    "https://images.unsplash.com/photo-1587654780291-39c9404d746b?w=400&h=300&fit=crop",
	},
	{
		Name:        "Educational Toys",
		Description: "Learning toys, puzzles, and educational games",
		ImageURL:    "https://images.unsplash.com/photo-1596464716127-f2a82984de30?w=400&h=300&fit=crop",
	},
	{
		Name:        "Board Games",
		Description: "Family board games and strategy games",
		ImageURL:    "https://images.unsplash.com/photo-1610890716171-6b1bb98ffd09?w=400&h=300&fit=crop",
	},
	{
		Name:        "Plush Toys",
		Description: "Soft plush toys and stuffed animals",
		ImageURL:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=300&fit=crop",
	},
	{
		Name:        "Remote Control",
		Description: "RC cars, drones, and remote control toys",
		ImageURL:    "https://images.unsplash.com/photo-1566576912321-d58ddd7a6088?w=400&h=300&fit=crop",
	},
}

var seedProducts = []seedProduct{
	{Name: "Superhero Action Figure", Description: "Poseable 15cm hero figure with accessories", Price: 24.99, StockQuantity: 50, Category: "Action Figures"},
	{Name: "Classic Brick Set 500pc", Description: "500-piece compatible building brick set", Price: 39.99, StockQuantity: 30, Category: "Building Blocks"},
	{Name: "Wooden Alphabet Puzzle", Description: "26-piece wooden puzzle for early learners", Price: 14.99, StockQuantity: 80, Category: "Educational Toys"},
	{Name: "Family Strategy Game", Description: "Board game for 2-6 players, ages 8+", Price: 29.99, StockQuantity: 40, Category: "Board Games"},
	{Name: "Giant Teddy Bear", Description: "90cm soft plush teddy bear", Price: 49.99, StockQuantity: 20, Category: "Plush Toys"},
	{Name: "Off-Road RC Truck", Description: "1:18 scale rechargeable RC truck", Price: 59.99, StockQuantity: 25, Category: "Remote Control"},
}

// Seeds demo accounts, categories and products. Safe to re-run: rows that
// already exist (by email, username or name) are skipped.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	admin, err := seedAccounts(ctx, userRepo)
	if err != nil {
		log.Fatalf("seed users: %v", err)
	}

	categories, err := seedCatalog(ctx, gormDB, categoryRepo)
	if err != nil {
		log.Fatalf("seed categories: %v", err)
	}

	if err := seedListings(ctx, gormDB, productRepo, admin, categories); err != nil {
		log.Fatalf("seed products: %v", err)
	}

	log.Println("Seed completed successfully")
}

func seedAccounts(ctx context.Context, repo repository.UserRepository) (*model.User, error) {
	var admin *model.User
	for _, su := range seedUsers {
		existing, err := repo.FindByEmail(ctx, su.Email)
		if err == nil {
			log.Printf("User %s already exists, skipping", su.Email)
			if existing.IsAdmin {
				admin = existing
			}
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}

		user := &model.User{
			Email:        su.Email,
			Username:     su.Username,
			FullName:     su.FullName,
			PasswordHash: string(hash),
			IsActive:     true,
			IsAdmin:      su.IsAdmin,
		}
		if err := repo.Create(ctx, user); err != nil {
			return nil, err
		}
		log.Printf("Created user %s", user.Email)
		if user.IsAdmin {
			admin = user
		}
	}
	return admin, nil
}

func seedCatalog(ctx context.Context, gormDB *gorm.DB, repo repository.CategoryRepository) (map[string]uint, error) {
	byName := make(map[string]uint, len(seedCategories))
	for _, sc := range seedCategories {
		var existing model.Category
		err := gormDB.WithContext(ctx).Where("name = ?", sc.Name).First(&existing).Error
		if err == nil {
			log.Printf("Category %q already exists, skipping", sc.Name)
			byName[sc.Name] = existing.ID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}

		category := &model.Category{
			Name:        sc.Name,
			Description: sc.Description,
			ImageURL:    sc.ImageURL,
			IsActive:    true,
		}
		if err := repo.Create(ctx, category); err != nil {
			return nil, err
		}
		log.Printf("Created category %q", category.Name)
		byName[category.Name] = category.ID
	}
	return byName, nil
}

func seedListings(ctx context.Context, gormDB *gorm.DB, repo repository.ProductRepository, seller *model.User, categories map[string]uint) error {
	if seller == nil {
		log.Println("No admin user to own seed products, skipping")
		return nil
	}
	for _, sp := range seedProducts {
		categoryID, ok := categories[sp.Category]
		if !ok {
			log.Printf("Category %q missing, skipping product %q", sp.Category, sp.Name)
			continue
		}

		var existing model.Product
		err := gormDB.WithContext(ctx).Where("name = ?", sp.Name).First(&existing).Error
		if err == nil {
			log.Printf("Product %q already exists, skipping", sp.Name)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		product := &model.Product{
			Name:          sp.Name,
			Description:   sp.Description,
			Price:         sp.Price,
			StockQuantity: sp.StockQuantity,
			CategoryID:    categoryID,
			SellerID:      seller.ID,
			IsActive:      true,
		}
		if err := repo.Create(ctx, product); err != nil {
			return err
		}
		log.Printf("Created product %q", product.Name)
	}
	return nil
}
