package handler

import (
	"net/http"

	"relay-chat/internal/services"
	"relay-chat/internal/transport/httpdto"
	"relay-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

const MessengerAllowMethods = "GET, POST, OPTIONS"

type MessengerHandler struct {
	service *services.MessengerService
	log     *logger.Logger
}

func NewMessengerHandler(service *services.MessengerService, log *logger.Logger) *MessengerHandler {
	return &MessengerHandler{service: service, log: log}
}

func (h *MessengerHandler) Post(c *gin.Context) {
	var req httpdto.ActionRequest
	if !bindBody(c, &req) {
		return
	}
	switch req.Action {
	case "add_contact":
		h.addContact(c)
	case "send_message":
		h.sendMessage(c)
	default:
		unknownAction(c, h.log)
	}
}

func (h *MessengerHandler) Get(c *gin.Context) {
	switch c.Query("action") {
	case "get_contacts":
		h.getContacts(c)
	case "get_chats":
		h.getChats(c)
	case "get_messages":
		h.getMessages(c)
	default:
		unknownAction(c, h.log)
	}
}

func (h *MessengerHandler) addContact(c *gin.Context) {
	var req httpdto.AddContactRequest
	if !bindBody(c, &req) {
		return
	}
	if err := h.service.AddContact(c.Request.Context(), req.UserID, req.ContactLogin); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.SuccessResponse{Success: true})
}

func (h *MessengerHandler) sendMessage(c *gin.Context) {
	var req httpdto.SendMessageRequest
	if !bindBody(c, &req) {
		return
	}
	m, err := h.service.SendMessage(c.Request.Context(), services.SendMessageInput{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Text:       req.MessageText,
		Type:       req.MessageType,
		MediaURL:   req.MediaURL,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.SendMessageResponse{Success: true, MessageID: m.ID, ChatID: m.ChatID})
}

func (h *MessengerHandler) getContacts(c *gin.Context) {
	var q httpdto.UserQuery
	if !bindQuery(c, &q) {
		return
	}
	contacts, err := h.service.GetContacts(c.Request.Context(), q.UserID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.ContactsResponse{Success: true, Contacts: httpdto.ToContacts(contacts)})
}

func (h *MessengerHandler) getChats(c *gin.Context) {
	var q httpdto.UserQuery
	if !bindQuery(c, &q) {
		return
	}
	chats, err := h.service.GetChats(c.Request.Context(), q.UserID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.ChatsResponse{Success: true, Chats: httpdto.ToChats(chats)})
}

func (h *MessengerHandler) getMessages(c *gin.Context) {
	var q httpdto.ChatQuery
	if !bindQuery(c, &q) {
		return
	}
	msgs, err := h.service.GetMessages(c.Request.Context(), q.ChatID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.MessagesResponse{Success: true, Messages: httpdto.ToMessages(msgs)})
}
