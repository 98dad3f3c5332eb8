package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateUserMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LeaveExhaustedMailData struct {
	FullName  string `json:"fullName"`
	LeaveType string `json:"leaveType"`
	Used      int32  `json:"used"`
	Available int32  `json:"available"`
}
