package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/spacial-to-fxa/any-outlet/middleware"
	"github.com/spacial-to-fxa/any-outlet/models"
	"github.com/spacial-to-fxa/any-outlet/store"
	"github.com/spacial-to-fxa/any-outlet/utils"
)

// AuthController handles signup, OTP verification, login and logout.
// sendMail defaults to the SMTP mailer; tests swap in a capture.
type AuthController struct {
	users    *store.Users
	sendMail func(to, subject, body string) error
}

func NewAuthController(users *store.Users) *AuthController {
	return &AuthController{users: users, sendMail: utils.SendMail}
}

func (a *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", viewData(c, nil))
}

// Login checks the account exists and is verified before ever touching
// the password, and keeps only the user id in the session.
func (a *AuthController) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := a.users.FindByEmail(c.Request.Context(), email)
	if errors.Is(err, store.ErrNotFound) || (err == nil && !user.IsVerified) {
		c.HTML(http.StatusOK, "login.html", viewData(c, gin.H{
			"Error": "User not found or unverified",
		}))
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	if err := utils.CheckPassword(user.Password, password); err != nil {
		c.HTML(http.StatusOK, "login.html", viewData(c, gin.H{
			"Error": "Wrong password",
		}))
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, user.ID.Hex())
	if err := session.Save(); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (a *AuthController) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", viewData(c, nil))
}

// Signup creates an unverified member with a fresh OTP and emails the
// code. The user is persisted before the mail goes out, so a mail outage
// leaves an unverified account behind; verification can never succeed
// without the code, so the account stays inert.
func (a *AuthController) Signup(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirm := c.PostForm("confirmPassword")

	if password != confirm {
		c.HTML(http.StatusOK, "signup.html", viewData(c, gin.H{
			"Error": "Passwords do not match",
		}))
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		serverError(c, err)
		return
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		serverError(c, err)
		return
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleMember,
		OTP:      otp,
	}
	err = a.users.Create(c.Request.Context(), &user)
	if errors.Is(err, store.ErrEmailTaken) {
		c.HTML(http.StatusOK, "signup.html", viewData(c, gin.H{
			"Error": "Email already exists",
		}))
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	if err := a.sendMail(email, "Verify Any Outlet", "OTP: "+otp); err != nil {
		serverError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionTempEmailKey, email)
	if err := session.Save(); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/verify-otp")
}

func (a *AuthController) ShowVerifyOTP(c *gin.Context) {
	c.HTML(http.StatusOK, "verify_otp.html", viewData(c, nil))
}

// VerifyOTP compares the submitted code byte-for-byte with the pending
// one. No lockout, no attempt limit, no expiry; a wrong code just
// re-renders the form.
func (a *AuthController) VerifyOTP(c *gin.Context) {
	session := sessions.Default(c)
	email, _ := session.Get(middleware.SessionTempEmailKey).(string)
	code := c.PostForm("otp")

	invalid := func() {
		c.HTML(http.StatusOK, "verify_otp.html", viewData(c, gin.H{
			"Error": "Invalid OTP",
		}))
	}

	if email == "" {
		invalid()
		return
	}

	user, err := a.users.FindByEmail(c.Request.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		invalid()
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	if user.OTP == "" || user.OTP != code {
		invalid()
		return
	}

	if err := a.users.MarkVerified(c.Request.Context(), user.ID); err != nil {
		serverError(c, err)
		return
	}

	session.Delete(middleware.SessionTempEmailKey)
	if err := session.Save(); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// Logout drops the whole session and goes home.
func (a *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
