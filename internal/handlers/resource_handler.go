package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"katalog/internal/repositories"
)

// ResourceHandler serves generic collection CRUD straight off the document
// store, for any collection that has no dedicated handler. Routes registered
// before it (such as /products) keep their own semantics.
type ResourceHandler struct {
	store *repositories.DocumentStore
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(store *repositories.DocumentStore) *ResourceHandler {
	return &ResourceHandler{
		store: store,
	}
}

// RegisterRoutes registers the generic collection routes. Must be called
// after all dedicated handlers so it only catches leftover collections.
func (h *ResourceHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/:collection", h.HandleList)
	router.Post("/:collection", h.HandleCreate)
	router.Get("/:collection/:id", h.HandleGet)
	router.Put("/:collection/:id", h.HandleReplace)
	router.Delete("/:collection/:id", h.HandleDelete)
}

// HandleList returns every document in a collection.
func (h *ResourceHandler) HandleList(c *fiber.Ctx) error {
	collection := c.Params("collection")
	docs, err := h.store.List(collection)
	if err != nil {
		log.Printf("Error listing collection %s: %v", collection, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not list collection",
			"error":   err.Error(),
		})
	}
	return c.JSON(docs)
}

// HandleGet returns a single document by its ID.
func (h *ResourceHandler) HandleGet(c *fiber.Ctx) error {
	collection := c.Params("collection")
	id := c.Params("id")
	doc, err := h.store.Get(collection, id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Document with ID %s not found in %s", id, collection),
		})
	}
	return c.JSON(doc)
}

// HandleCreate inserts a document into a collection.
func (h *ResourceHandler) HandleCreate(c *fiber.Ctx) error {
	collection := c.Params("collection")

	doc := make(repositories.Document)
	if err := c.BodyParser(&doc); err != nil {
		log.Printf("Error parsing request body for collection %s: %v", collection, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	stored, err := h.store.Insert(collection, doc)
	if err != nil {
		log.Printf("Error inserting into collection %s: %v", collection, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create document",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(stored)
}

// HandleReplace swaps a document wholesale.
func (h *ResourceHandler) HandleReplace(c *fiber.Ctx) error {
	collection := c.Params("collection")
	id := c.Params("id")

	doc := make(repositories.Document)
	if err := c.BodyParser(&doc); err != nil {
		log.Printf("Error parsing request body for collection %s: %v", collection, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	stored, err := h.store.Replace(collection, id, doc)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Document with ID %s not found in %s", id, collection),
			})
		}
		log.Printf("Error replacing document %s in %s: %v", id, collection, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update document",
			"error":   err.Error(),
		})
	}
	return c.JSON(stored)
}

// HandleDelete removes a document from a collection.
func (h *ResourceHandler) HandleDelete(c *fiber.Ctx) error {
	collection := c.Params("collection")
	id := c.Params("id")

	if err := h.store.Delete(collection, id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Document with ID %s not found in %s", id, collection),
			})
		}
		log.Printf("Error deleting document %s from %s: %v", id, collection, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete document",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Document %s deleted successfully", id),
	})
}
