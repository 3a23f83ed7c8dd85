package models

type ClientListItem struct {
	ID              int64  `json:"id"`
	Nom             string `json:"nom"`
	Email           string `json:"email"`
	Statut          string `json:"statut"`
	DateInscription string `json:"dateInscription"`
	Actif           bool   `json:"actif"`
}

type ContactFrequent struct {
	Numero string `json:"numero"`
	Nom    string `json:"nom"`
}

type ClientTransaction struct {
	ID              int64   `json:"id"`
	Operateur       string  `json:"operateur"`
	NumeroCible     string  `json:"numeroCible"`
	Montant         float64 `json:"montant"`
	DevisePaiement  string  `json:"devisePaiement"`
	Statut          string  `json:"statut"`
	DateDemande     string  `json:"dateDemande"`
	DateTraitement  string  `json:"dateTraitement"`
	MontantCarte    float64 `json:"montantCarte"`
	DeviseCarte     string  `json:"deviseCarte"`
	TauxDeChange    float64 `json:"tauxDeChange"`
	FraisConversion float64 `json:"fraisConversion"`
	Pays            string  `json:"pays"`
	Commission      float64 `json:"commission"`
	TypeCommission  string  `json:"typeCommission"`
}

type Litige struct {
	ID             int64   `json:"id"`
	TransactionID  int64   `json:"transactionId"`
	Motif          string  `json:"motif"`
	Statut         string  `json:"statut"`
	Commentaire    string  `json:"commentaire"`
	DateCreation   string  `json:"dateCreation"`
	DateResolution *string `json:"dateResolution"`
}

type ReferralInfo struct {
	CodeParrainage         string  `json:"codeParrainage"`
	ParrainEmail           string  `json:"parrainEmail"`
	MontantTotalParrainage float64 `json:"montantTotalParrainage"`
	NombreRecharges        int     `json:"nombreRecharges"`
	BonusTotal             float64 `json:"bonusTotal"`
	Statut                 string  `json:"statut"`
}

type ClientDetails struct {
	ID                      int64  `json:"id"`
	Nom                     string `json:"nom"`
	Email                   string `json:"email"`
	Role                    string `json:"role"`
	Statut                  string `json:"statut"`
	MethodeAuthentification string `json:"methodeAuthentification"`
	DateInscription         string `json:"dateInscription"`
	Actif                   bool   `json:"actif"`

	MontantTotalRecharge float64 `json:"montantTotalRecharge"`
	NombreRecharges      int     `json:"nombreRecharges"`
	MontantMoyenRecharge float64 `json:"montantMoyenRecharge"`
	OperateurPrefere     string  `json:"operateurPrefere"`
	DevisePaiement       string  `json:"devisePaiement"`
	PaysPrefere          string  `json:"paysPrefere"`

	ContactsFrequents     []ContactFrequent   `json:"contactsFrequents"`
	DernieresTransactions []ClientTransaction `json:"dernieresTransactions"`
	ReferralInfo          *ReferralInfo       `json:"referralInfo,omitempty"`
	LitigesEnCours        []Litige            `json:"litigesEnCours"`
}

type ClientSearch struct {
	Nom       string `query:"nom"`
	Email     string `query:"email"`
	Statut    string `query:"statut"`
	DateDebut string `query:"dateDebut"`
	DateFin   string `query:"dateFin"`
	Page      int    `query:"page"`
	Size      int    `query:"size"`
	Sort      string `query:"sort"`
}
