package commands

import (
	_ "github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/commands/checkin"
	_ "github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/commands/checkout"
	_ "github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/commands/help"
	_ "github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/commands/initcmd"
	_ "github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/commands/list"
	_ "github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/commands/log"
	_ "github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/commands/rollback"
	_ "github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/commands/status"
	_ "github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/commands/verify"
)

// import all commands to trigger init
