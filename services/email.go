package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// EmailService envoie les emails transactionnels du mouvement via
// l'API Resend.
type EmailService struct {
	apiKey      string
	fromEmail   string
	frontendURL string
}

func NewEmailService(apiKey, fromEmail, frontendURL string) *EmailService {
	return &EmailService{
		apiKey:      apiKey,
		fromEmail:   fromEmail,
		frontendURL: frontendURL,
	}
}

// SendWelcome envoie le mail de bienvenue avec le numéro de carte.
func (s *EmailService) SendWelcome(to, firstName, membershipNumber string) error {
	if s.apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	cardURL := fmt.Sprintf("%s/carte", s.frontendURL)

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: sans-serif; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #00a651 0%%, #008f45 100%%); color: white; padding: 30px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; }
        .card-number { font-size: 24px; font-weight: bold; letter-spacing: 2px; }
        .button { display: inline-block; background: #00a651; color: white; padding: 15px 30px; text-decoration: none; border-radius: 8px; margin: 20px 0; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🤝 Bienvenue au Mouvement Citoyen</h1>
        </div>
        <div class="content">
            <p>Bonjour %s,</p>
            <p>Votre adhésion est confirmée. Voici votre numéro de carte de membre :</p>
            <p class="card-number">%s</p>
            <a href="%s" class="button">Voir ma carte de membre</a>
            <p>Merci de votre engagement !</p>
        </div>
    </div>
</body>
</html>
	`, firstName, membershipNumber, cardURL)

	payload := map[string]interface{}{
		"from":    fmt.Sprintf("Mouvement Citoyen <%s>", s.fromEmail),
		"to":      []string{to},
		"subject": "Bienvenue ! Votre adhésion est confirmée",
		"html":    htmlBody,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to send email: status %d", resp.StatusCode)
	}

	return nil
}
