package userController

import (
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	uservalidator "lms/validators/user"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// profileImageFromRequest resolves the avatar for a request. An uploaded file
// wins over a body URL; empty string means nothing was supplied.
func profileImageFromRequest(c *fiber.Ctx, bodyURL *string) (string, error) {
	if file, err := c.FormFile("avatar"); err == nil && file != nil {
		return utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	}

	if bodyURL != nil {
		if !utils.IsImageURL(*bodyURL) {
			return "", fiber.NewError(fiber.StatusBadRequest, "Only images are allowed")
		}
		return *bodyURL, nil
	}

	return "", nil
}

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*uservalidator.RegisterRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User already exists")
	}

	profileImage, err := profileImageFromRequest(c, reqData.ProfileImage)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	if profileImage == "" {
		profileImage = config.AppConfig.DefaultProfileImage
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to process your request!")
	}

	newUser := models.User{
		Name:         reqData.Name,
		Email:        reqData.Email,
		Password:     string(hashedPassword),
		ProfileImage: profileImage,
		Role:         models.RoleStandard,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User already exists")
	}

	token, err := middleware.GenerateJWT(newUser.ID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to generate token")
	}

	utils.SendVerificationEmail(newUser.Email, newUser.Name, token)

	return c.JSON(fiber.Map{
		"message": "user created",
		"token":   token,
		"userId":  newUser.ID,
	})
}

// CreateSuperAdmin seeds an elevated account. Seeded admins skip email
// verification.
func CreateSuperAdmin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*uservalidator.RegisterRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to process your request!")
	}

	admin := models.User{
		Name:         reqData.Name,
		Email:        reqData.Email,
		Password:     string(hashedPassword),
		ProfileImage: config.AppConfig.DefaultProfileImage,
		Role:         models.RoleSuperAdmin,
		Verified:     true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error saving superadmin to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User already exists")
	}

	token, err := middleware.GenerateJWT(admin.ID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"message": "user logged in",
		"token":   token,
		"userId":  admin.ID,
	})
}

func VerifyEmail(c *fiber.Ctx) error {
	userID, err := middleware.ParseToken(c.Params("token"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	if err := db.Model(&user).Update("verified", true).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to verify email!")
	}

	return c.JSON(fiber.Map{
		"message": "Email verified",
		"user":    user.Public(),
	})
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*uservalidator.LoginRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid credentials!")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid credentials!")
	}

	token, err := middleware.GenerateJWT(user.ID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to generate token")
	}

	// Nudge unverified accounts; never blocks the login itself
	if !user.Verified {
		utils.SendVerificationEmail(user.Email, user.Name, token)
	}

	return c.JSON(fiber.Map{
		"message": "user logged in",
		"token":   token,
		"userId":  user.ID,
	})
}

func ForgotPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedForgotPassword").(*uservalidator.ForgotPasswordRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	token, err := middleware.GenerateResetJWT(user.ID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to generate token")
	}

	utils.SendPasswordResetEmail(user.Email, user.Name, token)

	return c.JSON(fiber.Map{
		"message": "Reset link sent to your email",
	})
}

func ResetPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPassword").(*uservalidator.ResetPasswordRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	userID, err := middleware.ParseToken(c.Params("token"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to process your request!")
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to update password!")
	}

	return c.JSON(fiber.Map{
		"message": "Password updated",
	})
}

func GetUser(c *fiber.Ctx) error {
	targetID, ok := c.Locals("targetUserId").(string)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", targetID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	return c.JSON(fiber.Map{
		"user": user.Public(),
	})
}

func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
	}

	reqData, ok := c.Locals("validatedUpdateProfile").(*uservalidator.UpdateProfileRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
	}

	// Only supplied fields are written
	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Email != nil && *reqData.Email != user.Email {
		if err := db.Where("email = ?", *reqData.Email).First(&models.User{}).Error; err == nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email is already registered!")
		}
		updates["email"] = *reqData.Email
	}

	profileImage, err := profileImageFromRequest(c, reqData.ProfileImage)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	if profileImage != "" {
		updates["profile_image"] = profileImage
	}

	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			log.Printf("Error updating user %s: %v", userID, err)
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to update profile!")
		}
	}

	return c.JSON(fiber.Map{
		"message": "User updated",
		"user":    user.Public(),
	})
}

func DeleteAccount(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
	}

	// Enrollments cascade with the account and each affected course loses
	// one enrollee, so its counter comes down in the same transaction.
	tx := db.Begin()

	var courseIDs []string
	if err := tx.Model(&models.Enrollment{}).Where("user_id = ?", userID).Pluck("course_id", &courseIDs).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to delete account!")
	}

	if len(courseIDs) > 0 {
		if err := tx.Model(&models.Course{}).Where("id IN ?", courseIDs).
			Update("popularity", gorm.Expr("popularity - 1")).Error; err != nil {
			tx.Rollback()
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to delete account!")
		}
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.Enrollment{}).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to delete account!")
	}

	if err := tx.Delete(&user).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to delete account!")
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Failed to commit account deletion:", err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to delete account!")
	}

	utils.SendAccountDeletedEmail(user.Email, user.Name)

	return c.JSON(fiber.Map{
		"message": "User deleted",
		"user":    user.Public(),
	})
}
