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

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type AssignmentNoticeMailData struct {
	FullName      string `json:"fullName"`
	Establishment string `json:"establishment"`
	EventTitle    string `json:"eventTitle"`
	ArriveTime    string `json:"arriveTime"`
	EndTime       string `json:"endTime"`
}

type PayrollSummaryMailData struct {
	FullName    string  `json:"fullName"`
	Month       string  `json:"month"`
	TotalAmount float64 `json:"totalAmount"`
	Services    int     `json:"services"`
}
