package email

import "github.com/rk2835/aquahub/internal/model"

// SendWelcomeEmail greets a newly registered customer or vendor.
func (c *Client) SendWelcomeEmail(to, name, userType string) error {
	data := map[string]string{
		"Name":      name,
		"Role":      roleLabel(model.UserType(userType)),
		"Dashboard": model.UserType(userType).DashboardPath(),
	}

	return c.SendEmail(
		to,
		"Welcome to AquaHub!",
		TemplateWelcome,
		data,
	)
}

func roleLabel(t model.UserType) string {
	if t == model.UserTypeVendor {
		return "water supplier"
	}
	return "customer"
}
