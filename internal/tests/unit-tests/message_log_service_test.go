package unit_tests

import (
	"testing"
	"time"

	"chatmate/internal/models"
	"chatmate/internal/services"
	"chatmate/internal/tests/utils"
)

func TestMessageLogService_Open_SeedsGreeting(t *testing.T) {
	service := services.NewMessageLogService()
	conversation := &models.Conversation{ID: "c1", Title: "Trip planning"}

	log := service.Open(conversation)
	utils.Equal(t, len(log), 1)
	utils.Equal(t, log[0].Sender, models.SenderAssistant)
	utils.Equal(t, log[0].Text, `Hi! I'm here to help you with "Trip planning". How can I assist you today?`)
}

func TestMessageLogService_Reopen_DiscardsHistory(t *testing.T) {
	service := services.NewMessageLogService()
	conversation := &models.Conversation{ID: "c1", Title: "Trip planning"}

	first := service.Open(conversation)
	service.Append("c1", models.Message{ID: "m1", Text: "hi", Sender: models.SenderUser, Timestamp: time.Now()})
	service.Append("c1", models.Message{ID: "m2", Text: "hello", Sender: models.SenderAssistant, Timestamp: time.Now()})

	log := service.Open(conversation)
	utils.Equal(t, len(log), 1)
	utils.Equal(t, log[0].Sender, models.SenderAssistant)
	utils.Equal(t, log[0].Text, first[0].Text)
	if log[0].ID == "m1" || log[0].ID == "m2" {
		t.Fatal("reopen must regenerate the greeting, not keep prior messages")
	}
	utils.Equal(t, len(service.Messages("c1")), 1)
}

func TestMessageLogService_Drop_RemovesLog(t *testing.T) {
	service := services.NewMessageLogService()
	conversation := &models.Conversation{ID: "c1", Title: "Trip planning"}

	service.Open(conversation)
	service.Append("c1", models.Message{ID: "m1", Text: "hi", Sender: models.SenderUser, Timestamp: time.Now()})
	service.Drop("c1")

	utils.Equal(t, len(service.Messages("c1")), 0)
}

func TestMessageLogService_LogsAreIndependent(t *testing.T) {
	service := services.NewMessageLogService()
	service.Open(&models.Conversation{ID: "c1", Title: "One"})
	service.Open(&models.Conversation{ID: "c2", Title: "Two"})
	service.Append("c1", models.Message{ID: "m1", Text: "only in c1", Sender: models.SenderUser, Timestamp: time.Now()})

	utils.Equal(t, len(service.Messages("c1")), 2)
	utils.Equal(t, len(service.Messages("c2")), 1)
}

func TestMessageLogService_ReturnsCopies(t *testing.T) {
	service := services.NewMessageLogService()
	service.Open(&models.Conversation{ID: "c1", Title: "One"})

	log := service.Messages("c1")
	log[0].Text = "mutated"

	utils.Equal(t, service.Messages("c1")[0].Text != "mutated", true)
}
