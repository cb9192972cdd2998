package schemes

// Official is a curated seed of IANA-registered URI schemes that take the
// "://" authority form. The teacher's original Official list is itself a
// generated file (refreshed periodically from the IANA registry) that was
// not part of this build's retrieval; this seed covers the schemes most
// likely to appear in scanned message bodies and keeps uri's strict-mode
// scheme check buildable without network access. A production deployment should
// regenerate the full registry the same way the original generator does.
var Official = []string{
	`coap`,
	`fax`,
	`file`,
	`ftp`,
	`h323`,
	`http`,
	`https`,
	`imap`,
	`ldap`,
	`mms`,
	`msrp`,
	`news`,
	`nfs`,
	`nntp`,
	`pop`,
	`rtsp`,
	`sftp`,
	`sip`,
	`sips`,
	`smb`,
	`snmp`,
	`ssh`,
	`telnet`,
	`ventrilo`,
	`vnc`,
	`webcal`,
	`ws`,
	`wss`,
}
