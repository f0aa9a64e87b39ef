package workspace

type CreateEventRequest struct {
	Summary  string `form:"summary"`
	StartISO string `form:"start_iso"`
	EndISO   string `form:"end_iso"`
}

type SendMailRequest struct {
	To      string `form:"to"`
	Subject string `form:"subject"`
	Body    string `form:"body"`
}
