package imapparser

import (
	"github.com/araddon/dateparse"
)

// parseEnvelope parses the ENVELOPE fetch attribute, RFC 3501 section
// 7.4.2:
//
//	envelope        = "(" env-date SP env-subject SP env-from SP
//	                  env-sender SP env-reply-to SP env-to SP env-cc SP
//	                  env-bcc SP env-in-reply-to SP env-message-id ")"
func (p *parser) parseEnvelope() (Envelope, error) {
	var env Envelope
	if err := p.expectByte('('); err != nil {
		return env, err
	}

	dateBytes, present, err := p.parseNString()
	if err != nil {
		return env, err
	}
	if present {
		// RFC 2822 dates in the wild deviate from the ABNF servers are
		// supposed to emit; dateparse.ParseAny tolerates the deviations
		// real servers produce instead of rejecting them outright. A
		// date that still doesn't parse is treated as absent, per the
		// "type error on malformed input" rule, rather than failing the
		// whole envelope.
		if t, derr := dateparse.ParseAny(string(dateBytes)); derr == nil {
			env.Date = t
			env.HasDate = true
		}
	}
	if err := p.expectSP(); err != nil {
		return env, err
	}

	env.Subject, env.HasSubject, err = p.parseNString()
	if err != nil {
		return env, err
	}
	if err := p.expectSP(); err != nil {
		return env, err
	}

	addrLists := []struct {
		addrs   *[]Address
		has     *bool
	}{
		{&env.From, &env.HasFrom},
		{&env.Sender, &env.HasSender},
		{&env.ReplyTo, &env.HasReplyTo},
		{&env.To, &env.HasTo},
		{&env.Cc, &env.HasCc},
		{&env.Bcc, &env.HasBcc},
	}
	for _, l := range addrLists {
		addrs, has, err := p.parseAddressList()
		if err != nil {
			return env, err
		}
		*l.addrs = addrs
		*l.has = has
		if err := p.expectSP(); err != nil {
			return env, err
		}
	}

	env.InReplyTo, env.HasInReplyTo, err = p.parseNString()
	if err != nil {
		return env, err
	}
	if err := p.expectSP(); err != nil {
		return env, err
	}

	env.MessageID, env.HasMessageID, err = p.parseNString()
	if err != nil {
		return env, err
	}

	if err := p.expectByte(')'); err != nil {
		return env, err
	}
	return env, nil
}

// parseAddressList parses one env-from/env-sender/... slot: either NIL
// (absent), or a parenthesised run of one-or-more address tuples with no
// separator between them.
//
//	"(" 1*address ")" / nil
func (p *parser) parseAddressList() ([]Address, bool, error) {
	if p.cur() == 'N' || p.cur() == 'n' {
		if p.at(1) == 'I' || p.at(1) == 'i' {
			if p.at(2) == 'L' || p.at(2) == 'l' {
				p.advance(3)
				return nil, false, nil
			}
		}
	}
	if err := p.expectByte('('); err != nil {
		return nil, false, err
	}
	var addrs []Address
	for {
		addr, err := p.parseAddress()
		if err != nil {
			return nil, false, err
		}
		addrs = append(addrs, addr)
		if p.cur() != '(' {
			break
		}
	}
	if err := p.expectByte(')'); err != nil {
		return nil, false, err
	}
	return addrs, true, nil
}

// parseAddress parses one address tuple, RFC 3501 section 9:
//
//	address         = "(" addr-name SP addr-adl SP addr-mailbox SP
//	                  addr-host ")"
func (p *parser) parseAddress() (Address, error) {
	var a Address
	if err := p.expectByte('('); err != nil {
		return a, err
	}

	var err error
	a.Name, a.NamePresent, err = p.parseNString()
	if err != nil {
		return a, err
	}
	if err := p.expectSP(); err != nil {
		return a, err
	}

	a.Adl, a.AdlPresent, err = p.parseNString()
	if err != nil {
		return a, err
	}
	if err := p.expectSP(); err != nil {
		return a, err
	}

	a.Mailbox, a.MailboxPresent, err = p.parseNString()
	if err != nil {
		return a, err
	}
	if err := p.expectSP(); err != nil {
		return a, err
	}

	a.Host, a.HostPresent, err = p.parseNString()
	if err != nil {
		return a, err
	}

	if err := p.expectByte(')'); err != nil {
		return a, err
	}
	return a, nil
}
