package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucUser "github.com/BruksfildServices01/barber-booking/internal/usecase/user"
)

type UserHandler struct {
	errorResponder

	register *ucUser.RegisterUser
	list     *ucUser.ListUsers
	get      *ucUser.GetUser
}

func NewUserHandler(
	register *ucUser.RegisterUser,
	list *ucUser.ListUsers,
	get *ucUser.GetUser,
	exposeDetails bool,
) *UserHandler {
	return &UserHandler{
		errorResponder: errorResponder{exposeDetails: exposeDetails},
		register:       register,
		list:           list,
		get:            get,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *UserHandler) Create(c *gin.Context) {
	var req ucUser.RegisterUserInput
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.register.Execute(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	httpresp.Created(c, out)
}

// ======================================================
// LIST
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.list.Execute(c.Request.Context(), domain.Type(c.Query("type")))
	if err != nil {
		h.fail(c, err)
		return
	}
	httpresp.List(c, users)
}

func (h *UserHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.list.Execute(c.Request.Context(), domain.TypeBarber)
	if err != nil {
		h.fail(c, err)
		return
	}
	httpresp.List(c, barbers)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	u, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	httpresp.OK(c, u)
}
