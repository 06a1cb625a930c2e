package middlewares

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/macaris64/lumgoo-backend/models"
	"github.com/macaris64/lumgoo-backend/utils"
)

var validate = validator.New()

// peekBody decodes the request body into v and puts the raw bytes back so
// the handler can bind again.
func peekBody(c *gin.Context, v any) error {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(data))
	return json.Unmarshal(data, v)
}

func abortValidation(c *gin.Context, errs []string) {
	_ = c.Error(utils.ValidationErrors(errs))
	c.Abort()
}

func ValidateCreateMovie(c *gin.Context) {
	var body struct {
		Title string `json:"title"`
	}
	if err := peekBody(c, &body); err != nil {
		abortValidation(c, []string{"Invalid request body"})
		return
	}
	if body.Title == "" {
		abortValidation(c, []string{"Title is required"})
		return
	}
	c.Next()
}

func ValidateCreateActor(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := peekBody(c, &body); err != nil {
		abortValidation(c, []string{"Invalid request body"})
		return
	}
	if body.Name == "" {
		abortValidation(c, []string{"Name is required"})
		return
	}
	c.Next()
}

func ValidateCreateGenre(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := peekBody(c, &body); err != nil {
		abortValidation(c, []string{"Invalid request body"})
		return
	}
	if body.Name == "" {
		abortValidation(c, []string{"Name is required"})
		return
	}
	c.Next()
}

func ValidateRegistration(c *gin.Context) {
	var body models.Registration
	if err := peekBody(c, &body); err != nil {
		abortValidation(c, []string{"Invalid request body"})
		return
	}

	var errs []string
	if body.Username == "" {
		errs = append(errs, "Username is required")
	}
	if body.Email == "" {
		errs = append(errs, "Email is required")
	} else if validate.Var(body.Email, "email") != nil {
		errs = append(errs, "Invalid email format")
	}
	if body.Password == "" {
		errs = append(errs, "Password is required")
	} else if len(body.Password) < 6 {
		errs = append(errs, "Password must be at least 6 characters long")
	} else if body.Password != body.PasswordConfirmation {
		errs = append(errs, "Passwords do not match")
	}

	if len(errs) > 0 {
		abortValidation(c, errs)
		return
	}
	c.Next()
}

func ValidateLogin(c *gin.Context) {
	var body models.Login
	if err := peekBody(c, &body); err != nil {
		abortValidation(c, []string{"Invalid request body"})
		return
	}

	var errs []string
	if body.Email == "" {
		errs = append(errs, "Email is required")
	} else if validate.Var(body.Email, "email") != nil {
		errs = append(errs, "Invalid email format")
	}
	if body.Password == "" {
		errs = append(errs, "Password is required")
	} else if len(body.Password) < 6 {
		errs = append(errs, "Password must be at least 6 characters long")
	}

	if len(errs) > 0 {
		abortValidation(c, errs)
		return
	}
	c.Next()
}

func ValidateVerification(c *gin.Context) {
	var body struct {
		Token string `json:"token"`
	}
	if err := peekBody(c, &body); err != nil || body.Token == "" {
		abortValidation(c, []string{"Token is required"})
		return
	}
	c.Next()
}
