package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/encuentrame-backend/internal/adapter/postgres/migrate"
	"github.com/heartmarshall/encuentrame-backend/internal/app"
	"github.com/heartmarshall/encuentrame-backend/internal/auth"
	"github.com/heartmarshall/encuentrame-backend/internal/config"
	"github.com/heartmarshall/encuentrame-backend/internal/domain"
	"github.com/heartmarshall/encuentrame-backend/internal/service/catalog"
	"github.com/heartmarshall/encuentrame-backend/internal/service/opening"
	"github.com/heartmarshall/encuentrame-backend/internal/service/stall"
	"github.com/heartmarshall/encuentrame-backend/migrations"
	"github.com/heartmarshall/encuentrame-backend/pkg/ctxutil"
)

type cli struct {
	cfg *config.Config
	log *slog.Logger
	out io.Writer
}

// identity holds the caller flags shared by every acting command.
type identity struct {
	token  string
	caller string
}

func (id *identity) register(fs *flag.FlagSet) {
	fs.StringVar(&id.token, "token", "", "bearer JWT identifying the caller")
	fs.StringVar(&id.caller, "caller", "", "caller id (skips token verification)")
}

// context returns ctx carrying the resolved caller. With neither flag set
// the context stays anonymous and services reject it as unauthorized.
func (id *identity) context(ctx context.Context, resolver *auth.Resolver) (context.Context, error) {
	switch {
	case id.caller != "":
		return ctxutil.WithCallerID(ctx, strings.TrimSpace(id.caller)), nil
	case id.token != "":
		if resolver == nil {
			return nil, fmt.Errorf("token verification: %w", domain.ErrNotConfigured)
		}
		callerID, err := resolver.Resolve(id.token)
		if err != nil {
			return nil, err
		}
		return ctxutil.WithCallerID(ctx, callerID), nil
	default:
		return ctx, nil
	}
}

func (c *cli) run(ctx context.Context, name string, args []string) error {
	switch name {
	case "migrate":
		return c.migrate(ctx)
	case "token":
		return c.token(args)
	case "create", "list", "rename", "delete", "open", "close", "current", "history", "products", "product-set":
		return c.act(ctx, name, args)
	case "help", "-h", "--help":
		usage(os.Stdout)
		return nil
	default:
		return errUsage
	}
}

func (c *cli) migrate(ctx context.Context) error {
	applied, err := migrate.Up(ctx, c.cfg.Database.DSN, migrations.FS)
	if err != nil {
		return err
	}
	version, err := migrate.Version(ctx, c.cfg.Database.DSN, migrations.FS)
	if err != nil {
		return err
	}

	c.log.InfoContext(ctx, "migrations applied",
		slog.Int("count", len(applied)),
		slog.Int64("version", version),
	)
	return writeJSON(c.out, map[string]any{"applied": applied, "version": version})
}

func (c *cli) token(args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	caller := fs.String("caller", "", "caller id to embed")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *caller == "" {
		return domain.NewValidationError("caller", "required")
	}
	if !c.cfg.Auth.TokensEnabled() {
		return fmt.Errorf("token signing: %w", domain.ErrNotConfigured)
	}

	resolver := auth.NewResolver(c.cfg.Auth.JWTSecret, c.cfg.Auth.JWTIssuer)
	token, err := resolver.Issue(*caller, c.cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}
	return writeJSON(c.out, map[string]string{"token": token})
}

// act runs a command that needs the wired application and a caller.
func (c *cli) act(ctx context.Context, name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var id identity
	id.register(fs)

	var (
		stallFlag  = fs.String("stall", "", "stall id")
		nameFlag   = fs.String("name", "", "stall name")
		limit      = fs.Int("limit", 0, "history size")
		activeOnly = fs.Bool("active-only", false, "only active products")

		lat, lng      optionalFloat
		accuracy      = fs.Float64("accuracy", 0, "location accuracy in meters")
		stallPhoto    = fs.String("stall-photo", "", "object key of the stall photo")
		productsPhoto = fs.String("products-photo", "", "object key of the products photo")
		inventoryText = fs.String("inventory", "", "declared inventory text")

		productID, display, price, tags optionalString
		active                          optionalBool
	)
	fs.Var(&lat, "lat", "latitude")
	fs.Var(&lng, "lng", "longitude")
	fs.Var(&price, "price", "product price")
	fs.Var(&productID, "product", "product id")
	fs.Var(&display, "display", "product display name")
	fs.Var(&active, "active", "product active flag")
	fs.Var(&tags, "tags", "comma-separated product tags")

	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	a, err := app.New(ctx, c.cfg, c.log)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, err = id.context(ctxutil.WithRequestID(ctx, uuid.NewString()), a.Resolver)
	if err != nil {
		return err
	}

	stallID, err := parseStallID(*stallFlag, name == "create" || name == "list" || name == "current")
	if err != nil {
		return err
	}

	switch name {
	case "create":
		st, err := a.Stalls.Create(ctx, stall.CreateStallInput{Name: *nameFlag})
		return c.result(toStallView(st), err)

	case "list":
		stalls, err := a.Stalls.List(ctx)
		views := make([]stallView, 0, len(stalls))
		for i := range stalls {
			views = append(views, toStallView(&stalls[i]))
		}
		return c.result(views, err)

	case "rename":
		st, err := a.Stalls.Rename(ctx, stall.RenameStallInput{StallID: stallID, Name: *nameFlag})
		return c.result(toStallView(st), err)

	case "delete":
		err := a.Stalls.Delete(ctx, stallID)
		return c.result(map[string]bool{"ok": true}, err)

	case "open":
		in := opening.OpenInput{
			StallID:          stallID,
			Lat:              lat.ptr(),
			Lng:              lng.ptr(),
			Accuracy:         *accuracy,
			StallPhotoKey:    *stallPhoto,
			ProductsPhotoKey: *productsPhoto,
			InventoryText:    *inventoryText,
		}
		if *nameFlag != "" {
			in.StallName = nameFlag
		}
		res, err := a.Openings.Open(ctx, in)
		return c.result(res, err)

	case "close":
		res, err := a.Openings.Close(ctx, stallID)
		return c.result(res, err)

	case "current":
		var res *opening.CurrentResult
		if stallID == uuid.Nil {
			res, err = a.Openings.GetMine(ctx)
		} else {
			res, err = a.Openings.GetCurrent(ctx, stallID)
		}
		if err != nil {
			return err
		}
		return writeJSON(c.out, toCurrentView(res))

	case "history":
		ops, err := a.Openings.ListOpenings(ctx, stallID, *limit)
		views := make([]openingView, 0, len(ops))
		for i := range ops {
			views = append(views, toOpeningView(&ops[i]))
		}
		return c.result(map[string]any{"items": views}, err)

	case "products":
		products, err := a.Catalog.List(ctx, stallID, *activeOnly)
		views := make([]productView, 0, len(products))
		for i := range products {
			views = append(views, toProductView(&products[i]))
		}
		return c.result(map[string]any{"items": views}, err)

	case "product-set":
		in := catalog.UpdateProductInput{
			StallID:   stallID,
			ProductID: productID.value,
			Display:   display.ptr(),
			Active:    active.ptr(),
		}
		if price.set {
			p, parseErr := decimal.NewFromString(strings.TrimSpace(price.value))
			if parseErr != nil {
				return domain.NewValidationError("price", "must be a decimal number")
			}
			in.Price = &p
		}
		if tags.set {
			in.Tags = splitTags(tags.value)
		}
		p, err := a.Catalog.Update(ctx, in)
		return c.result(toProductView(p), err)
	}

	return errUsage
}

// result prints v, or returns err unchanged for the error envelope.
func (c *cli) result(v any, err error) error {
	if err != nil {
		return err
	}
	return writeJSON(c.out, v)
}

func parseStallID(raw string, optional bool) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if optional {
			return uuid.Nil, nil
		}
		return uuid.Nil, domain.NewValidationError("stall_id", "required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("stall_id", "must be a UUID")
	}
	return id, nil
}

func splitTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
