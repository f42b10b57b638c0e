package controller

import (
	"strconv"
	"strings"

	"storefront-bot/internal/constant"
	"storefront-bot/internal/mapper"
	"storefront-bot/internal/pkg/serverutils"
	"storefront-bot/internal/service"
	"storefront-bot/pkg/dialogue"
	"storefront-bot/pkg/query"

	"github.com/gofiber/fiber/v2"
)

// ICatalogController exposes the bot's query surface over HTTP. Every route is public.
type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	SearchByName(ctx *fiber.Ctx) error
	SearchByNameAndPrice(ctx *fiber.Ctx) error
	SearchQuestions(ctx *fiber.Ctx) error
	NearbyShops(ctx *fiber.Ctx) error
	TopProducts(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalog service.ICatalogService
}

func NewCatalogController(catalog service.ICatalogService) ICatalogController {
	return &catalogController{catalog: catalog}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog")
	h.Get("/search/:keyword", c.SearchByName)
	h.Get("/search/:keyword/:min/:max", c.SearchByNameAndPrice)
	h.Get("/question/:keyword", c.SearchQuestions)
	h.Get("/location/:lat/:lon", c.NearbyShops)
	h.Get("/top", c.TopProducts)
}

// parseFailure maps a dialogue input error to a 400 carrying the same wording the bot uses.
func parseFailure(err error) error {
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}

func (c *catalogController) SearchByName(ctx *fiber.Ctx) error {
	keyword := strings.TrimSpace(ctx.Params("keyword"))
	if keyword == "" {
		return fiber.NewError(fiber.StatusBadRequest, constant.TipEnterProductName)
	}

	products, err := c.catalog.SearchByName(ctx.Context(), keyword)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Products", mapper.ToProductResponses(products)))
}

func (c *catalogController) SearchByNameAndPrice(ctx *fiber.Ctx) error {
	keyword := strings.TrimSpace(ctx.Params("keyword"))
	if keyword == "" {
		return fiber.NewError(fiber.StatusBadRequest, constant.TipEnterProductName)
	}
	price, err := dialogue.ParsePriceRange(ctx.Params("min"), ctx.Params("max"))
	if err != nil {
		return parseFailure(err)
	}

	products, err := c.catalog.SearchByNameAndPrice(ctx.Context(), keyword, price)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Products", mapper.ToProductResponses(products)))
}

func (c *catalogController) SearchQuestions(ctx *fiber.Ctx) error {
	keyword, err := dialogue.ParseQuestion(ctx.Params("keyword"))
	if err != nil {
		return parseFailure(err)
	}

	questions, err := c.catalog.SearchQuestions(ctx.Context(), keyword)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Questions", mapper.ToQuestionResponses(questions)))
}

func (c *catalogController) NearbyShops(ctx *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(ctx.Params("lat"), 64)
	lon, errLon := strconv.ParseFloat(ctx.Params("lon"), 64)
	origin := query.Point{Latitude: lat, Longitude: lon}
	if errLat != nil || errLon != nil || !origin.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid coordinates")
	}

	shops, err := c.catalog.NearbyShops(ctx.Context(), origin)
	if err != nil {
		return err
	}

	res := mapper.ToShopResponses(shops)
	for _, r := range res {
		d := query.Haversine(origin, query.Point{Latitude: r.Latitude, Longitude: r.Longitude})
		r.DistanceKm = &d
	}
	return ctx.JSON(serverutils.SuccessResponse("Shops", res))
}

func (c *catalogController) TopProducts(ctx *fiber.Ctx) error {
	products, err := c.catalog.TopProducts(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Top products", mapper.ToProductResponses(products)))
}
