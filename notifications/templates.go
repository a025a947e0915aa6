package notifications

import "fmt"

// Fixed transactional templates for the onboarding workflow. Each returns
// (subject, htmlContent).

func RegistrationEmail(institutionName, tempPassword, orderID string) (string, string) {
	body := fmt.Sprintf(
		"<h1>Registration Received</h1>"+
			"<p>Thank you for registering <b>%s</b>.</p>"+
			"<p>Your temporary password is: <b>%s</b></p>"+
			"<p>Complete your subscription payment using order reference <b>%s</b>. "+
			"Your account will be activated once an administrator approves your registration.</p>",
		institutionName, tempPassword, orderID,
	)
	return "Your Registration is Under Review", body
}

func AdminRegistrationNotice(institutionName, registrationNumber, planType string) (string, string) {
	body := fmt.Sprintf(
		"<h1>New Institution Registration</h1>"+
			"<p><b>%s</b> (registration number %s) has registered for the %s plan and is awaiting review.</p>",
		institutionName, registrationNumber, planType,
	)
	return "New Institution Awaiting Approval", body
}

func PaymentReceiptEmail(institutionName string, amountPaise int64, currency, paymentID string) (string, string) {
	body := fmt.Sprintf(
		"<h1>Payment Received</h1>"+
			"<p>We have received your payment of %.2f %s for <b>%s</b> (payment reference %s).</p>"+
			"<p>Your registration is now awaiting administrator approval.</p>",
		float64(amountPaise)/100, currency, institutionName, paymentID,
	)
	return "Payment Confirmation", body
}

func WelcomeEmail(institutionName, email, password, loginURL string) (string, string) {
	body := fmt.Sprintf(
		"<h1>Welcome Aboard!</h1>"+
			"<p>The registration for <b>%s</b> has been approved.</p>"+
			"<p>Login email: <b>%s</b><br>Password: <b>%s</b></p>"+
			"<p><a href='%s'>Log in to your dashboard</a></p>",
		institutionName, email, password, loginURL,
	)
	return "Your Institution has been Approved!", body
}

func RejectionEmail(institutionName, reason string) (string, string) {
	body := fmt.Sprintf(
		"<h1>Registration Update</h1>"+
			"<p>We regret to inform you that the registration for <b>%s</b> was not approved.</p>",
		institutionName,
	)
	if reason != "" {
		body += fmt.Sprintf("<p>Reason: %s</p>", reason)
	}
	return "Update on Your Institution Registration", body
}
