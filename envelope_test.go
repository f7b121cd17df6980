package imapparser

import "testing"

func TestEnvelopeAddressesAndAbsentDate(t *testing.T) {
	input := `(NIL "hi there" ((NIL NIL "a" "b.com")) NIL NIL ((NIL NIL "c" "d.com")) NIL NIL NIL "<msg@id>")`
	p := newParser([]byte(input))
	env, err := p.parseEnvelope()
	if err != nil {
		t.Fatalf("parseEnvelope: %v", err)
	}
	if env.HasDate {
		t.Fatalf("expected absent date, got %v", env.Date)
	}
	if string(env.Subject) != "hi there" {
		t.Fatalf("subject = %q", env.Subject)
	}
	if !env.HasFrom || len(env.From) != 1 || string(env.From[0].Mailbox) != "a" || string(env.From[0].Host) != "b.com" {
		t.Fatalf("from = %+v", env.From)
	}
	if env.HasSender {
		t.Fatalf("expected sender absent")
	}
	if !env.HasTo || string(env.To[0].Mailbox) != "c" {
		t.Fatalf("to = %+v", env.To)
	}
	if env.HasInReplyTo {
		t.Fatalf("expected in-reply-to absent")
	}
	if !env.HasMessageID || string(env.MessageID) != "<msg@id>" {
		t.Fatalf("message-id = %v %q", env.HasMessageID, env.MessageID)
	}
}

func TestEnvelopeMalformedDateDegradesToAbsent(t *testing.T) {
	input := `("not a real date" NIL NIL NIL NIL NIL NIL NIL NIL NIL)`
	p := newParser([]byte(input))
	env, err := p.parseEnvelope()
	if err != nil {
		t.Fatalf("parseEnvelope: %v", err)
	}
	if env.HasDate {
		t.Fatalf("expected malformed date to degrade to absent, got %v", env.Date)
	}
}

func TestMailboxINBOXCanonicalization(t *testing.T) {
	cases := []string{"INBOX", "inbox", "Inbox", "InBoX"}
	for _, c := range cases {
		p := newParser([]byte(c))
		got, err := p.parseMailbox()
		if err != nil {
			t.Fatalf("parseMailbox(%q): %v", c, err)
		}
		if string(got) != "INBOX" {
			t.Fatalf("parseMailbox(%q) = %q, want INBOX", c, got)
		}
	}

	p := newParser([]byte(`"iNbOx"`))
	got, err := p.parseMailbox()
	if err != nil {
		t.Fatalf("parseMailbox quoted: %v", err)
	}
	if string(got) != "INBOX" {
		t.Fatalf("quoted INBOX = %q", got)
	}

	p = newParser([]byte("INBOX.Sub"))
	got, err = p.parseMailbox()
	if err != nil {
		t.Fatalf("parseMailbox(INBOX.Sub): %v", err)
	}
	if string(got) != "INBOX.Sub" {
		t.Fatalf("non-exact INBOX prefix should pass through verbatim, got %q", got)
	}
}
