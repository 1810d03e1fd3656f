package mailing

import (
	"fmt"
	"html"
)

const (
	KindNewRequest      = "new_request"
	KindRequestAccepted = "request_accepted"
	KindRequestRejected = "request_rejected"
)

func NewRequestMail(appURL, foodName, requestorEmail string) (string, string) {
	subject := fmt.Sprintf("New request for %s", foodName)
	body := fmt.Sprintf(
		"<p><b>%s</b> requested your listing <b>%s</b>.</p><p><a href=\"%s/dashboard\">Review it on ShareBite</a></p>",
		html.EscapeString(requestorEmail), html.EscapeString(foodName), appURL,
	)
	return subject, body
}

func RequestDecisionMail(appURL, foodName, status string) (string, string) {
	subject := fmt.Sprintf("Your request for %s was %s", foodName, status)
	body := fmt.Sprintf(
		"<p>Your request for <b>%s</b> was <b>%s</b>.</p><p><a href=\"%s/my-requests\">See your requests</a></p>",
		html.EscapeString(foodName), html.EscapeString(status), appURL,
	)
	return subject, body
}
