package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"OvernightExchange/internal/model"
)

const maxContactBody = 16 << 10

func validateContact(req *model.ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	switch {
	case req.Name == "":
		return errors.New("name is required")
	case req.Email == "":
		return errors.New("email is required")
	case req.Message == "":
		return errors.New("message is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return errors.New("email is invalid")
	}
	return nil
}

// handleContact accepts the contact form and acknowledges it with a ticket
// id. Nothing is stored.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "malformed form")
			return
		}
		req = model.ContactRequest{
			Name:    r.PostForm.Get("name"),
			Email:   r.PostForm.Get("email"),
			Subject: r.PostForm.Get("subject"),
			Message: r.PostForm.Get("message"),
		}
	}

	if err := validateContact(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ticket := uuid.New()
	log.Printf("[INFO] contact request %s from %q: %q", ticket, req.Email, req.Subject)
	writeJSON(w, http.StatusAccepted, map[string]string{"ticket": ticket.String()})
}
