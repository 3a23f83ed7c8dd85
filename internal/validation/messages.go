package validation

var fieldMessages = map[string]string{
	"nom.required":            "Le nom est requis",
	"nom.notblank":            "Le nom est requis",
	"name.required":           "Le nom est requis",
	"email.required":          "L'email est requis",
	"email.email":             "Format d'email invalide",
	"motDePasse.required":     "Le mot de passe est requis",
	"motDePasse.min":          "Le mot de passe doit contenir au moins 8 caractères",
	"code.required":           "Le code est requis",
	"code.isocode":            "Le code doit être composé de 3 lettres majuscules",
	"symbol.required":         "Le symbole est requis",
	"region.required":         "La région est requise",
	"priority.gte":            "La priorité doit être un nombre positif",
	"pays.required":           "Le pays est requis",
	"pays.oneof":              "Pays non pris en charge",
	"operateur.required":      "L'opérateur est requis",
	"operateur.oneof":         "Opérateur non pris en charge",
	"codeDetection.required":  "Le code de détection est requis",
	"statut.required":         "Le statut est requis",
	"statut.oneof":            "Statut invalide",
	"logoUrl.required":        "L'URL du logo est requise",
	"typeCommission.required": "Le type de commission est requis",
	"typeCommission.oneof":    "Type de commission invalide",
	"valeur.required":         "La valeur est requise",
	"valeur.gte":              "La valeur doit être positive",
	"valeur.maxpercent":       "Le pourcentage ne peut pas dépasser 100%",
	"montant.gt":              "Le montant doit être supérieur à 0",
	"montant.gte":             "Le montant doit être positif",
	"taux.gt":                 "Le taux doit être supérieur à 0",
	"deviseSource.required":   "La devise source est requise",
	"deviseSource.currency":   "Devise source non prise en charge",
	"deviseCible.required":    "La devise cible est requise",
	"deviseCible.currency":    "Devise cible non prise en charge",
	"deviseCible.nefield":     "Les devises source et cible doivent être différentes",
	"reponse.required":        "La réponse est requise",
	"motif.required":          "Le motif est requis",
	"sujet.required":          "Le sujet est requis",
	"message.required":        "Le message est requis",
	"userId.required":         "L'utilisateur est requis",
	"transactionId.required":  "La transaction est requise",
	"agentId.required":        "L'agent est requis",
	"format.required":         "Le format est requis",
	"format.oneof":            "Format d'export non pris en charge",

	"ancienMotDePasse.required":        "L'ancien mot de passe est requis",
	"nouveauMotDePasse.required":       "Le nouveau mot de passe est requis",
	"nouveauMotDePasse.min":            "Le nouveau mot de passe doit contenir au moins 8 caractères",
	"nouveauMotDePasse.strongpassword": "Le mot de passe doit contenir au moins une majuscule, une minuscule, un chiffre et un caractère spécial",
	"confirmationMotDePasse.required":  "La confirmation est requise",
	"confirmationMotDePasse.eqfield":   "Les nouveaux mots de passe ne correspondent pas",
}

var tagMessages = map[string]string{
	"required": "Ce champ est requis",
	"oneof":    "Valeur non autorisée",
	"email":    "Format d'email invalide",
	"gt":       "La valeur doit être strictement positive",
	"gte":      "La valeur doit être positive",
}

func messageFor(field, tag string) string {
	if msg, ok := fieldMessages[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := tagMessages[tag]; ok {
		return msg
	}
	return "Valeur invalide"
}
