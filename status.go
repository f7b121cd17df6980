package imapparser

// parseStatus parses the "* STATUS" untagged response data, RFC 3501
// section 7.2.4, with the cursor positioned right after the "STATUS"
// keyword:
//
//	mailbox-data    =/ "STATUS" SP mailbox SP "(" [status-att-list] ")"
//	status-att-list = status-att SP number *(SP status-att SP number)
func (p *parser) parseStatus() (Status, error) {
	var st Status
	if err := p.expectSP(); err != nil {
		return st, err
	}
	mailbox, err := p.parseMailbox()
	if err != nil {
		return st, err
	}
	st.Mailbox = mailbox
	if err := p.expectSP(); err != nil {
		return st, err
	}
	if err := p.expectByte('('); err != nil {
		return st, err
	}

	st.Attrs = map[Token]uint64{}
	if p.cur() != ')' {
		for {
			name, err := p.parseAtom()
			if err != nil {
				return st, err
			}
			tok := classify(name)
			switch tok {
			case TokenMessages, TokenRecent, TokenUIDNext, TokenUIDValidity, TokenUnseen:
			default:
				return st, p.errorf("STATUS: unknown status-att %q", name)
			}
			if err := p.expectSP(); err != nil {
				return st, err
			}
			n, err := p.parseNumber()
			if err != nil {
				return st, err
			}
			st.Attrs[tok] = n

			if p.cur() == ' ' {
				p.advance(1)
				continue
			}
			break
		}
	}

	if err := p.expectByte(')'); err != nil {
		return st, err
	}
	return st, nil
}
