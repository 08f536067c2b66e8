package devserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/booshananamudara/zoura-mobile/internal/client/models"
)

func (s *Server) handleProducts(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Products())
}

// seed fills the store with a browsable catalog, a couple of accounts and
// some feed history. Passwords for the seeded accounts are "password123".
func (s *Server) seed() {
	s.store.SetProducts([]models.Product{
		{
			ID:          "prod-tshirt",
			Name:        "Classic Tee",
			Description: "Heavyweight cotton t-shirt",
			Price:       "24.90",
			Stock:       0,
			Vendor:      models.Vendor{ID: "vendor-loom", ShopName: "Loomworks"},
			Variants: []models.Variant{
				{ID: "var-tee-red-m", Color: "Red", Size: "M", SKU: "TEE-R-M", Stock: 12},
				{ID: "var-tee-red-l", Color: "Red", Size: "L", SKU: "TEE-R-L", Stock: 7},
				{ID: "var-tee-blue-m", Color: "Blue", Size: "M", SKU: "TEE-B-M", Stock: 4, Price: "26.90"},
			},
		},
		{
			ID:          "prod-mug",
			Name:        "Stoneware Mug",
			Description: "350ml glazed mug",
			Price:       "12.50",
			Stock:       40,
			Vendor:      models.Vendor{ID: "vendor-kiln", ShopName: "Kiln & Co"},
		},
		{
			ID:     "prod-poster",
			Name:   "City Poster",
			Price:  "9.00",
			Stock:  15,
			Vendor: models.Vendor{ID: "vendor-kiln", ShopName: "Kiln & Co"},
			Variants: []models.Variant{
				{ID: "var-poster-a2", Size: "A2", SKU: "POST-A2", Stock: 9},
				{ID: "var-poster-a1", Size: "A1", SKU: "POST-A1", Stock: 6, Price: "14.00"},
			},
		},
	})

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return
	}
	free, _ := s.store.CreateAccount("Freda Free", "freda@zoura.dev", hash, models.TierFree)
	gold, _ := s.store.CreateAccount("Goldie Gold", "goldie@zoura.dev", hash, models.TierGold)
	if free == nil || gold == nil {
		return
	}

	base := time.Now().Add(-48 * time.Hour)
	s.store.SetPosts([]models.Post{
		{
			ID:        "post-welcome",
			User:      models.PostAuthor{ID: gold.ID, Name: gold.Name, Email: gold.Email},
			Content:   "New drop from Loomworks just landed!",
			CreatedAt: base,
		},
		{
			ID:         "post-mug",
			User:       models.PostAuthor{ID: gold.ID, Name: gold.Name, Email: gold.Email},
			Content:    "Morning coffee in the new stoneware mug.",
			LikesCount: 3,
			CreatedAt:  base.Add(3 * time.Hour),
		},
	})
}
