package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	// Caixa do time de operações que recebe o aviso de cada giro.
	OpsMailbox string
	// Remetente do aviso interno ("Built Team") e do email do participante
	// ("Customer Success"). O segundo cai no primeiro quando não configurado.
	FromInternal string
	FromCS       string
}

type NoticeEmailData struct {
	Name          string
	Email         string
	PhoneNumber   string
	WheelID       string
	Prize         string
	HasWonPrize   string
	NumberOfSpins int64
}

type PrizeWonEmailData struct {
	Name  string
	Prize string
}

type TryAgainEmailData struct {
	Name string
}
