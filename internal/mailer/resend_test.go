package mailer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tekimax.app/docs/core/config"
	"tekimax.app/docs/internal/mailer"
)

var _ = Describe("Resend sender", func() {
	var (
		server  *httptest.Server
		status  int
		reqBody map[string]any
		reqPath string
		auth    string
	)

	BeforeEach(func() {
		status = http.StatusOK
		reqBody = nil
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqPath = r.URL.Path
			auth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&reqBody)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			if status == http.StatusOK {
				_, _ = w.Write([]byte(`{"id":"email_1"}`))
				return
			}
			_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
		}))
		DeferCleanup(server.Close)
	})

	message := mailer.Message{
		From:    "TEKIMAX <onboarding@resend.dev>",
		To:      []string{"bob@example.com"},
		Subject: "Join Acme on TEKIMAX Docs",
		HTML:    "<p>hi</p>",
		Headers: map[string]string{mailer.EntityRefHeader: "123"},
	}

	It("should post the email to the API", func() {
		sender, err := mailer.NewResendSender("re_test", server.URL)
		Expect(err).NotTo(HaveOccurred())

		Expect(sender.Send(context.Background(), message)).To(Succeed())
		Expect(reqPath).To(Equal("/emails"))
		Expect(auth).To(Equal("Bearer re_test"))
		Expect(reqBody).To(HaveKeyWithValue("from", message.From))
		Expect(reqBody).To(HaveKeyWithValue("subject", message.Subject))
		Expect(reqBody).To(HaveKeyWithValue("html", message.HTML))
		Expect(reqBody["to"]).To(ConsistOf("bob@example.com"))
		Expect(reqBody["headers"]).To(HaveKeyWithValue(mailer.EntityRefHeader, "123"))
	})

	It("should surface non-2xx responses as errors", func() {
		status = http.StatusUnprocessableEntity
		sender, err := mailer.NewResendSender("re_test", server.URL)
		Expect(err).NotTo(HaveOccurred())

		err = sender.Send(context.Background(), message)
		Expect(err).To(MatchError(ContainSubstring("Resend API error")))
	})
})

var _ = Describe("New", func() {
	It("should require an API key for resend", func() {
		_, err := mailer.New(config.EmailConfig{Provider: mailer.ProviderResend})
		Expect(err).To(MatchError(mailer.ErrNotConfigured))
	})

	It("should require a host for smtp", func() {
		_, err := mailer.New(config.EmailConfig{Provider: mailer.ProviderSMTP})
		Expect(err).To(MatchError(mailer.ErrNotConfigured))
	})

	It("should build an smtp sender", func() {
		sender, err := mailer.New(config.EmailConfig{Provider: mailer.ProviderSMTP, SMTPHost: "localhost", SMTPPort: 1025})
		Expect(err).NotTo(HaveOccurred())
		Expect(sender).NotTo(BeNil())
	})

	It("should reject unknown providers", func() {
		_, err := mailer.New(config.EmailConfig{Provider: "pigeon", ResendAPIKey: "x"})
		Expect(err).To(MatchError(mailer.ErrNotConfigured))
	})
})
