package user

import (
	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/amirasaad/minibank/pkg/service/directory"
	usersvc "github.com/amirasaad/minibank/pkg/service/user"
	"github.com/amirasaad/minibank/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the signup endpoint.
func Routes(app *fiber.App, userSvc *usersvc.Service) {
	app.Post("/signup", Signup(userSvc))
}

// Signup opens an account for a new user. Missing credentials are reported
// first, then the initial deposit is checked before the username and PIN
// are considered.
func Signup(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SignupInput](c)
		if input == nil {
			return err // Error already written by BindAndValidate
		}
		if input.Username == "" || input.Pin == "" {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Username and PIN are required.", nil)
		}

		initial := money.Zero()
		if !input.InitialDeposit.IsEmpty() {
			initial, err = input.InitialDeposit.Money()
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid initial deposit amount.", err)
			}
			if initial.IsNegative() {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Initial deposit cannot be negative.", nil)
			}
		}

		res, err := userSvc.Register(c.UserContext(), input.Username, input.Pin, initial)
		if err != nil {
			log.Errorf("Failed to register user: %v", err)
			return common.ProblemDetailsJSON(c, "Couldn't create user", err)
		}
		switch res.Status {
		case directory.Created:
			return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created successfully! Please log in.", UserResponse{
				ID:       res.User.ID.String(),
				Username: res.User.Username,
				Balance:  res.User.Account().Balance().String(),
			})
		case directory.AlreadyExists:
			return common.ErrorResponseJSON(c, fiber.StatusConflict, "Username already exists.", nil)
		case directory.InvalidPin:
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "PIN must be 4 digits.", nil)
		case directory.InvalidInitialBalance:
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Initial deposit cannot be negative.", nil)
		default:
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Couldn't create user", res.Status.String())
		}
	}
}
