package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/application/usecase"
	"github.com/seifmegahed/daftar/internal/domain/entity"
)

// ownerFunc construye el dueño a partir del :id de la ruta (entity.ForClient o entity.ForSupplier).
type ownerFunc func(id string) entity.Owner

// AddressHandler maneja direcciones y contactos de clientes y proveedores.
type AddressHandler struct {
	uc *usecase.AddressUseCase
}

// NewAddressHandler construye el handler.
func NewAddressHandler(uc *usecase.AddressUseCase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

// CreateAddress godoc
// @Summary      Agregar dirección
// @Tags         addresses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ID del cliente o proveedor"
// @Param        body  body  dto.AddressInput  true  "Dirección"
// @Success      201   {object}  dto.AddressResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/addresses [post]
// @Router       /api/suppliers/{id}/addresses [post]
func (h *AddressHandler) CreateAddress(owner ownerFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.AddressInput
		if err := bindJSON(c, &in); err != nil {
			return fail(c, err)
		}
		out, err := h.uc.CreateAddress(c.UserContext(), GetPrincipal(c), owner(c.Params("id")), in)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// ListAddresses godoc
// @Summary      Direcciones del dueño
// @Tags         addresses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente o proveedor"
// @Success      200  {array}  dto.AddressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/addresses [get]
// @Router       /api/suppliers/{id}/addresses [get]
func (h *AddressHandler) ListAddresses(owner ownerFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.uc.ListAddresses(c.UserContext(), owner(c.Params("id")))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(out)
	}
}

// GetAddress godoc
// @Summary      Obtener dirección por ID
// @Tags         addresses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la dirección"
// @Success      200  {object}  dto.AddressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/addresses/{id} [get]
func (h *AddressHandler) GetAddress(c *fiber.Ctx) error {
	out, err := h.uc.GetAddress(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// UpdateAddress godoc
// @Summary      Actualizar dirección
// @Tags         addresses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ID de la dirección"
// @Param        body  body  dto.AddressInput  true  "Dirección"
// @Success      200   {object}  dto.AddressResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/addresses/{id} [put]
func (h *AddressHandler) UpdateAddress(c *fiber.Ctx) error {
	var in dto.AddressInput
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.UpdateAddress(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// DeleteAddress godoc
// @Summary      Eliminar dirección (solo admin)
// @Tags         addresses
// @Security     Bearer
// @Param        id  path  string  true  "ID de la dirección"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/addresses/{id} [delete]
func (h *AddressHandler) DeleteAddress(c *fiber.Ctx) error {
	if err := h.uc.DeleteAddress(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateContact godoc
// @Summary      Agregar contacto
// @Tags         contacts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ID del cliente o proveedor"
// @Param        body  body  dto.ContactInput  true  "Contacto"
// @Success      201   {object}  dto.ContactResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/contacts [post]
// @Router       /api/suppliers/{id}/contacts [post]
func (h *AddressHandler) CreateContact(owner ownerFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.ContactInput
		if err := bindJSON(c, &in); err != nil {
			return fail(c, err)
		}
		out, err := h.uc.CreateContact(c.UserContext(), GetPrincipal(c), owner(c.Params("id")), in)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// ListContacts godoc
// @Summary      Contactos del dueño
// @Tags         contacts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente o proveedor"
// @Success      200  {array}  dto.ContactResponse
// @Router       /api/clients/{id}/contacts [get]
// @Router       /api/suppliers/{id}/contacts [get]
func (h *AddressHandler) ListContacts(owner ownerFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.uc.ListContacts(c.UserContext(), owner(c.Params("id")))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(out)
	}
}

// GetContact godoc
// @Summary      Obtener contacto por ID
// @Tags         contacts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contacto"
// @Success      200  {object}  dto.ContactResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contacts/{id} [get]
func (h *AddressHandler) GetContact(c *fiber.Ctx) error {
	out, err := h.uc.GetContact(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// UpdateContact godoc
// @Summary      Actualizar contacto
// @Tags         contacts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ID del contacto"
// @Param        body  body  dto.ContactInput  true  "Contacto"
// @Success      200   {object}  dto.ContactResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contacts/{id} [put]
func (h *AddressHandler) UpdateContact(c *fiber.Ctx) error {
	var in dto.ContactInput
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.UpdateContact(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// DeleteContact godoc
// @Summary      Eliminar contacto (solo admin)
// @Tags         contacts
// @Security     Bearer
// @Param        id  path  string  true  "ID del contacto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contacts/{id} [delete]
func (h *AddressHandler) DeleteContact(c *fiber.Ctx) error {
	if err := h.uc.DeleteContact(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
