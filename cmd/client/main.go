// Command client is a small command-line client for the go-shop-keeper server.
// It is mainly used for smoke-testing a running instance: register an account,
// browse the catalog, mutate the cart, and submit orders from a terminal.
//
// Usage:
//
//	client [flags] <command>
//
// Commands:
//
//	register  create an account (-username, -password)
//	catalog   list the full item catalog
//	search    find items by name (-name)
//	cart      show the current cart
//	add       add items to the cart (-item, -quantity)
//	remove    remove items from the cart (-item, -quantity)
//	submit    turn the cart into an order
//	history   list past orders, newest first
//	version   print the server version
//
// Every command except register and version logs in first using -username and
// -password.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-shop-keeper/internal/adapter"
	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	address := flag.String("address", "", "server address (overrides CLIENT_ADDRESS)")
	username := flag.String("username", "", "account username")
	password := flag.String("password", "", "account password")
	itemID := flag.Int64("item", 0, "item id for add/remove")
	quantity := flag.Int("quantity", 1, "number of units for add/remove")
	name := flag.String("name", "", "item name for search")
	flag.Parse()

	log := logger.NewLogger("go-shop-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if *address != "" {
		cfg.HTTPAddress = *address
	}

	shop, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	command := flag.Arg(0)
	if command == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), shop, command, commandArgs{
		username: *username,
		password: *password,
		itemID:   *itemID,
		quantity: *quantity,
		name:     *name,
	}); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}
}

type commandArgs struct {
	username string
	password string
	itemID   int64
	quantity int
	name     string
}

func run(ctx context.Context, shop adapter.ServerAdapter, command string, args commandArgs) error {
	switch command {
	case "version":
		version, err := shop.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Server version: %s\n", version)
		return nil

	case "register":
		user, err := shop.Register(ctx, models.CreateUserRequest{
			Username:        args.username,
			Password:        args.password,
			ConfirmPassword: args.password,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Registered %q (id %d)\n", user.Username, user.UserID)
		return nil
	}

	// all remaining commands need a session
	if _, err := shop.Login(ctx, models.LoginRequest{Username: args.username, Password: args.password}); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	switch command {
	case "catalog":
		items, err := shop.ListItems(ctx)
		if err != nil {
			return err
		}
		for _, item := range items {
			fmt.Printf("%4d  %-20s %8s  %s\n", item.ItemID, item.Name, item.Price.StringFixed(2), item.Description)
		}
		return nil

	case "search":
		items, err := shop.GetItemsByName(ctx, args.name)
		if err != nil {
			return err
		}
		for _, item := range items {
			fmt.Printf("%4d  %-20s %8s\n", item.ItemID, item.Name, item.Price.StringFixed(2))
		}
		return nil

	case "cart":
		cart, err := shop.GetCart(ctx, args.username)
		if err != nil {
			return err
		}
		printCart(cart)
		return nil

	case "add":
		cart, err := shop.AddToCart(ctx, models.ModifyCartRequest{
			Username: args.username,
			ItemID:   args.itemID,
			Quantity: args.quantity,
		})
		if err != nil {
			return err
		}
		printCart(cart)
		return nil

	case "remove":
		cart, err := shop.RemoveFromCart(ctx, models.ModifyCartRequest{
			Username: args.username,
			ItemID:   args.itemID,
			Quantity: args.quantity,
		})
		if err != nil {
			return err
		}
		printCart(cart)
		return nil

	case "submit":
		order, err := shop.SubmitOrder(ctx, args.username)
		if err != nil {
			return err
		}
		fmt.Printf("Order %d submitted, total %s\n", order.OrderID, order.Total.StringFixed(2))
		return nil

	case "history":
		orders, err := shop.GetOrderHistory(ctx, args.username)
		if err != nil {
			return err
		}
		for _, order := range orders {
			fmt.Printf("Order %4d  %s  total %s (%d items)\n",
				order.OrderID, order.CreatedAt.Format("2006-01-02 15:04"), order.Total.StringFixed(2), len(order.Items))
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func printCart(cart models.Cart) {
	for _, item := range cart.Items {
		fmt.Printf("%4d  %-20s %8s\n", item.ItemID, item.Name, item.Price.StringFixed(2))
	}
	fmt.Printf("Total: %s\n", cart.Total.StringFixed(2))
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
