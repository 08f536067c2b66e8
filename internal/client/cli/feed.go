package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/booshananamudara/zoura-mobile/internal/client/models"
	"github.com/booshananamudara/zoura-mobile/internal/common"
)

// Feed loads the first page of the social feed. Paging restarts from the
// top; use FeedMore to walk forward.
func (a *App) Feed(ctx context.Context) error {
	a.feedOffset = 0
	return a.loadFeedPage(ctx)
}

// FeedMore loads the next feed page after the last one shown.
func (a *App) FeedMore(ctx context.Context) error {
	return a.loadFeedPage(ctx)
}

func (a *App) loadFeedPage(ctx context.Context) error {
	page, err := a.feed.Get(ctx, a.config.FeedPageSize, a.feedOffset)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(page.Data) == 0 {
		if a.feedOffset == 0 {
			fmt.Println("The feed is empty")
		} else {
			fmt.Println("No more posts")
		}
		return nil
	}

	for _, p := range page.Data {
		printPost(p)
	}
	a.feedOffset = page.Offset + len(page.Data)
	if a.feedOffset < page.Total {
		fmt.Println("Type 'more' for older posts")
	}
	return nil
}

func printPost(p models.Post) {
	fmt.Printf("%s — %s\n", p.User.Name, p.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println(p.Content)
	if p.ImageURL != "" {
		fmt.Printf("[image] %s\n", p.ImageURL)
	}
	fmt.Printf("%d like(s)\n\n", p.LikesCount)
}

// Post publishes a new feed post. Posting is gated on the account's
// subscription tier before any input is collected; the server enforces the
// same rule.
func (a *App) Post(ctx context.Context) error {
	if !a.feed.CanPost() {
		fmt.Println("Posting requires a paid subscription tier")
		return common.ErrPostingNotAllowed
	}

	content, err := GetMultiline(a.reader, "Enter post text:", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		fmt.Println("Post text is required")
		return fmt.Errorf("empty post")
	}

	imagePath, err := getSimpleText(a.reader, "Enter image path (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.feed.CreatePost(ctx, content, imagePath)
	if err != nil {
		if errors.Is(err, common.ErrPostingNotAllowed) {
			fmt.Println("Posting requires a paid subscription tier")
		}
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Posted (%s)\n", post.ID)
	return nil
}
