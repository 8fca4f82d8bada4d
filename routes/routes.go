package routes

import (
	"github.com/gofiber/fiber/v2"

	"contacts-backend/controllers"
)

// Register wires all HTTP routes.
func Register(app *fiber.App, contacts *controllers.ContactController) {
	app.Get("/contacts", contacts.ListContacts)
	app.Get("/contacts/:id", contacts.GetContact)
	app.Post("/contacts", contacts.CreateContact)
	app.Post("/contacts/:id", contacts.UpdateContact)
	app.Delete("/contacts/:id", contacts.DeleteContact)
}
