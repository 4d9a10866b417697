package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kisahsukses_backend/internals/features/clients/dto"
	"kisahsukses_backend/internals/features/clients/model"
	helper "kisahsukses_backend/internals/helpers"
)

var validateClient = validator.New()

type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

// =============================
// ➕ Create Client
// =============================
func (ctrl *ClientController) CreateClient(c *fiber.Ctx) error {
	var body dto.CreateClientRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClient.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctrl.DB,
		"clients", "client_slug", helper.Slugify(body.ClientName, 120), nil, 120)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
	}

	client := model.ClientModel{
		ClientName:      body.ClientName,
		ClientSlug:      slug,
		ClientIsCompany: body.ClientIsCompany,
		ClientWebsite:   body.ClientWebsite,
	}

	if err := ctrl.DB.Create(&client).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create client")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Client berhasil dibuat", dto.ToClientDTO(client))
}

// =============================
// 🔄 Update Client
// =============================
func (ctrl *ClientController) UpdateClient(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateClientRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClient.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var client model.ClientModel
	if err := ctrl.DB.First(&client, "client_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Client not found")
	}

	client.ClientName = body.ClientName
	client.ClientIsCompany = body.ClientIsCompany
	client.ClientWebsite = body.ClientWebsite
	client.ClientUpdatedAt = time.Now()

	if err := ctrl.DB.Save(&client).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update client")
	}

	return helper.Success(c, "Client berhasil diperbarui", dto.ToClientDTO(client))
}

// =============================
// 🗑️ Delete Client
// =============================
func (ctrl *ClientController) DeleteClient(c *fiber.Ctx) error {
	id := c.Params("id")

	// tolak hapus kalau masih dirujuk story
	var count int64
	if err := ctrl.DB.Table("success_stories").
		Where("story_client_id = ?", id).Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check stories")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Client masih dipakai success story")
	}

	if err := ctrl.DB.Delete(&model.ClientModel{}, "client_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete client")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 📄 Get All Clients
// =============================
func (ctrl *ClientController) GetAllClients(c *fiber.Ctx) error {
	var clients []model.ClientModel
	if err := ctrl.DB.Order("client_name ASC").Find(&clients).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve clients")
	}

	result := make([]dto.ClientDTO, 0, len(clients))
	for _, cl := range clients {
		result = append(result, dto.ToClientDTO(cl))
	}

	return helper.Success(c, "OK", result)
}

// =============================
// 🔍 Get Client By ID
// =============================
func (ctrl *ClientController) GetClientByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var client model.ClientModel
	if err := ctrl.DB.First(&client, "client_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Client not found")
	}

	return helper.Success(c, "OK", dto.ToClientDTO(client))
}
