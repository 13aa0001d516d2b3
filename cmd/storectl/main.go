// storectl is a small command-line front end over the storefront client,
// used for poking the marketplace API from a terminal.
//
// Usage:
//
//	storectl products [-q query] [-category c] [-page n]
//	storectl stores [-q query]
//	storectl search <query>
//	storectl login <email> <password>
//	storectl logout
//	storectl me
//	storectl wishlist [add|remove <product-id>]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/utafrali/StorefrontGo/apperrors"
	"github.com/utafrali/StorefrontGo/config"
	"github.com/utafrali/StorefrontGo/httpapi"
	"github.com/utafrali/StorefrontGo/logger"
	"github.com/utafrali/StorefrontGo/session"
	"github.com/utafrali/StorefrontGo/storefront"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", apperrors.Message(err))
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New("storectl", cfg.LogLevel)

	tokens, err := buildTokenStore(cfg)
	if err != nil {
		return err
	}

	api := httpapi.New(httpapi.Config{
		BaseURL:         cfg.BaseURL,
		Timeout:         cfg.Timeout(),
		MaxConnsPerHost: 10,
	}, tokens, log)
	client := storefront.NewClient(api, log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		return fmt.Errorf("usage: storectl <products|stores|search|login|logout|me|wishlist> [args]")
	}

	switch args[0] {
	case "products":
		return cmdProducts(ctx, client, args[1:])
	case "stores":
		return cmdStores(ctx, client, args[1:])
	case "search":
		return cmdSearch(ctx, client, args[1:])
	case "login":
		return cmdLogin(ctx, client, args[1:])
	case "logout":
		return client.Auth.Logout(ctx)
	case "me":
		return cmdMe(ctx, client)
	case "wishlist":
		return cmdWishlist(ctx, client, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func buildTokenStore(cfg *config.Config) (session.TokenStore, error) {
	if cfg.RedisEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return session.NewRedisStore(rdb, cfg.SessionID, 24*time.Hour), nil
	}

	path, err := session.DefaultSessionPath()
	if err != nil {
		return nil, err
	}
	return session.NewFileStore(path), nil
}

func cmdProducts(ctx context.Context, client *storefront.Client, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	query := fs.String("q", "", "search query")
	category := fs.String("category", "", "category filter")
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	products, total, err := client.Products.List(ctx, storefront.ProductFilter{
		Query:    *query,
		Category: *category,
		Page:     *page,
		PerPage:  20,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%d products (of %d)\n", len(products), total)
	return printJSON(products)
}

func cmdStores(ctx context.Context, client *storefront.Client, args []string) error {
	fs := flag.NewFlagSet("stores", flag.ContinueOnError)
	query := fs.String("q", "", "search query")
	if err := fs.Parse(args); err != nil {
		return err
	}

	stores, total, err := client.Stores.List(ctx, storefront.StoreFilter{Query: *query, PerPage: 20})
	if err != nil {
		return err
	}

	fmt.Printf("%d stores (of %d)\n", len(stores), total)
	return printJSON(stores)
}

func cmdSearch(ctx context.Context, client *storefront.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: storectl search <query>")
	}

	res, err := client.Search.Search(ctx, args[0], 1, 20)
	if err != nil {
		return err
	}

	fmt.Printf("%d results for %q (of %d)\n", len(res.Products), res.Query, res.Total)
	return printJSON(res.Products)
}

func cmdLogin(ctx context.Context, client *storefront.Client, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: storectl login <email> <password>")
	}

	claims, err := client.Auth.Login(ctx, storefront.Credentials{
		Email:    args[0],
		Password: args[1],
	})
	if err != nil {
		return err
	}
	if claims != nil {
		fmt.Printf("logged in as %s\n", claims.UserID)
	} else {
		fmt.Println("logged in")
	}
	return nil
}

func cmdMe(ctx context.Context, client *storefront.Client) error {
	me, err := client.Users.Me(ctx)
	if err != nil {
		return err
	}
	return printJSON(me)
}

func cmdWishlist(ctx context.Context, client *storefront.Client, args []string) error {
	if len(args) == 0 {
		items, err := client.Wishlist.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(items)
	}

	if len(args) < 2 {
		return fmt.Errorf("usage: storectl wishlist [add|remove <product-id>]")
	}
	switch args[0] {
	case "add":
		item, err := client.Wishlist.Add(ctx, args[1], storefront.AddInput{})
		if err != nil {
			return err
		}
		return printJSON(item)
	case "remove":
		return client.Wishlist.Remove(ctx, args[1])
	default:
		return fmt.Errorf("unknown wishlist action %q", args[0])
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
