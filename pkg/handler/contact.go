package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kheobs/labsite/pkg/contact"
	"github.com/kheobs/labsite/pkg/utils/ginx"
)

// PostContact 提交联系表单：校验失败返回 400，提交失败返回 502
func (h *Handler) PostContact(c *gin.Context) {
	reasons := h.Content.Snapshot().Profile.ContactReasons

	form, errs := contact.Bind(c, reasons)
	if len(errs) != 0 {
		h.renderAbout(c, http.StatusBadRequest, gin.H{"form": form, "errors": errs})
		return
	}

	if err := h.Contact.Submit(c.Request.Context(), form.ToMessage(ginx.GetClientIP(c))); err != nil {
		logError(c, err, "submit contact message failed")
		h.renderAbout(c, http.StatusBadGateway, gin.H{
			"form":        form,
			"submitError": "Sorry, your message could not be sent. Please try again later or email us directly.",
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/about?sent=1#contact-section")
}
