package memory

import (
	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/domain/types"
)

// seedRecords returns the built-in IT support knowledge base. The store is
// populated from this set on first use; Add extends it at runtime.
func seedRecords() []*model.KnowledgeRecord {
	return []*model.KnowledgeRecord{
		{
			ID:          "wifi_1",
			Problem:     "Wi-Fi not connecting",
			Description: "Device cannot connect to Wi-Fi network, shows 'Cannot connect' error",
			DeviceType:  "laptop",
			OS:          "windows",
			Category:    "networking",
			Symptoms:    []string{"no wifi", "cannot connect", "network error"},
			Causes: []model.CauseEntry{
				{Cause: "Wi-Fi adapter disabled", Likelihood: types.LikelihoodHigh},
				{Cause: "Wrong password", Likelihood: types.LikelihoodHigh},
				{Cause: "Router issues", Likelihood: types.LikelihoodMedium},
				{Cause: "Driver problems", Likelihood: types.LikelihoodMedium},
			},
			Solutions: []model.SolutionEntry{
				{Step: 1, Action: "Check if Wi-Fi is enabled on your device", Why: "Wi-Fi might be disabled via airplane mode or physical switch", RiskLevel: types.RiskLevelSafe},
				{Step: 2, Action: "Restart your Wi-Fi router by unplugging it for 30 seconds", Why: "Clears temporary glitches in the router", RiskLevel: types.RiskLevelSafe},
				{Step: 3, Action: "Forget the network and reconnect with the correct password", Why: "Removes corrupted network settings", RiskLevel: types.RiskLevelSafe},
			},
		},
		{
			ID:          "slow_pc_1",
			Problem:     "Computer running very slow",
			Description: "Computer has become sluggish, applications take long to open, frequent freezing",
			DeviceType:  "desktop",
			OS:          "windows",
			Category:    "performance",
			Symptoms:    []string{"slow", "freezing", "laggy", "unresponsive"},
			Causes: []model.CauseEntry{
				{Cause: "Too many startup programs", Likelihood: types.LikelihoodHigh},
				{Cause: "Insufficient RAM", Likelihood: types.LikelihoodHigh},
				{Cause: "Full hard drive", Likelihood: types.LikelihoodMedium},
				{Cause: "Malware infection", Likelihood: types.LikelihoodMedium},
			},
			Solutions: []model.SolutionEntry{
				{Step: 1, Action: "Open Task Manager (Ctrl+Shift+Esc) and check CPU/Memory usage", Why: "Identifies which programs are consuming resources", RiskLevel: types.RiskLevelSafe},
				{Step: 2, Action: "Disable unnecessary startup programs via Task Manager > Startup tab", Why: "Reduces programs running in background", RiskLevel: types.RiskLevelSafe},
				{Step: 3, Action: "Free up disk space by removing temporary files using Disk Cleanup", Why: "More free space improves system performance", RiskLevel: types.RiskLevelSafe},
			},
		},
		{
			ID:          "blue_screen_1",
			Problem:     "Blue Screen of Death (BSOD)",
			Description: "Computer crashes with blue screen showing error codes",
			DeviceType:  "laptop",
			OS:          "windows",
			Category:    "system",
			Symptoms:    []string{"blue screen", "crash", "BSOD", "restart"},
			Causes: []model.CauseEntry{
				{Cause: "Driver conflicts", Likelihood: types.LikelihoodHigh},
				{Cause: "Hardware failure", Likelihood: types.LikelihoodMedium},
				{Cause: "Windows updates", Likelihood: types.LikelihoodMedium},
				{Cause: "Overheating", Likelihood: types.LikelihoodLow},
			},
			Solutions: []model.SolutionEntry{
				{Step: 1, Action: "Note down the error code from the blue screen (e.g., DRIVER_IRQL_NOT_LESS_OR_EQUAL)", Why: "Error codes help identify the specific problem", RiskLevel: types.RiskLevelSafe},
				{Step: 2, Action: "Boot in Safe Mode by restarting and pressing F8", Why: "Safe Mode loads only essential drivers, helping isolate the problem", RiskLevel: types.RiskLevelSafe},
				{Step: 3, Action: "Update or rollback recently installed drivers", Why: "Incompatible drivers are a common cause of BSODs", RiskLevel: types.RiskLevelCaution},
			},
		},
		{
			ID:          "printer_1",
			Problem:     "Printer not printing",
			Description: "Printer is connected but documents are not printing, stuck in queue",
			DeviceType:  "printer",
			OS:          "windows",
			Category:    "peripherals",
			Symptoms:    []string{"not printing", "print queue", "printer offline"},
			Causes: []model.CauseEntry{
				{Cause: "Printer offline", Likelihood: types.LikelihoodHigh},
				{Cause: "Paper jam", Likelihood: types.LikelihoodHigh},
				{Cause: "Low ink/toner", Likelihood: types.LikelihoodMedium},
				{Cause: "Driver issues", Likelihood: types.LikelihoodMedium},
			},
			Solutions: []model.SolutionEntry{
				{Step: 1, Action: "Check if printer is showing as 'Online' in Devices and Printers", Why: "Printer must be online to accept print jobs", RiskLevel: types.RiskLevelSafe},
				{Step: 2, Action: "Clear the print queue by canceling all documents", Why: "Stuck documents can block new print jobs", RiskLevel: types.RiskLevelSafe},
				{Step: 3, Action: "Restart the printer and reconnect USB cable or Wi-Fi", Why: "Resets the connection between computer and printer", RiskLevel: types.RiskLevelSafe},
			},
		},
		{
			ID:          "phone_battery_1",
			Problem:     "Phone battery draining fast",
			Description: "Smartphone battery depletes quickly, doesn't last through the day",
			DeviceType:  "phone",
			OS:          "android",
			Category:    "mobile",
			Symptoms:    []string{"battery drain", "short battery life", "quick discharge"},
			Causes: []model.CauseEntry{
				{Cause: "Background apps consuming power", Likelihood: types.LikelihoodHigh},
				{Cause: "Screen brightness too high", Likelihood: types.LikelihoodHigh},
				{Cause: "Old battery", Likelihood: types.LikelihoodMedium},
				{Cause: "Location services always on", Likelihood: types.LikelihoodMedium},
			},
			Solutions: []model.SolutionEntry{
				{Step: 1, Action: "Check battery usage in Settings > Battery to identify power-hungry apps", Why: "Shows which apps are consuming the most battery", RiskLevel: types.RiskLevelSafe},
				{Step: 2, Action: "Reduce screen brightness and enable adaptive brightness", Why: "Display is typically the biggest battery consumer", RiskLevel: types.RiskLevelSafe},
				{Step: 3, Action: "Disable unnecessary background app refresh and location services", Why: "Apps running in background drain battery even when not in use", RiskLevel: types.RiskLevelSafe},
			},
		},
		{
			ID:          "laptop_no_power_1",
			Problem:     "Laptop won't turn on",
			Description: "Laptop shows no signs of power, no lights, completely unresponsive",
			DeviceType:  "laptop",
			OS:          "windows",
			Category:    "hardware",
			Symptoms:    []string{"won't turn on", "no power", "black screen", "dead"},
			Causes: []model.CauseEntry{
				{Cause: "Dead battery", Likelihood: types.LikelihoodHigh},
				{Cause: "Power adapter failure", Likelihood: types.LikelihoodHigh},
				{Cause: "Loose connection", Likelihood: types.LikelihoodMedium},
				{Cause: "Hardware failure", Likelihood: types.LikelihoodLow},
			},
			Solutions: []model.SolutionEntry{
				{Step: 1, Action: "Check if power adapter LED is lit and connections are secure", Why: "Verifies power is reaching the laptop", RiskLevel: types.RiskLevelSafe},
				{Step: 2, Action: "Remove battery (if removable) and hold power button for 30 seconds, then reconnect", Why: "Performs a hard reset to clear residual power", RiskLevel: types.RiskLevelSafe},
				{Step: 3, Action: "Try a different power outlet and adapter if available", Why: "Rules out faulty outlet or adapter", RiskLevel: types.RiskLevelSafe},
			},
		},
		{
			ID:          "forgot_password_1",
			Problem:     "Forgot Windows password",
			Description: "Cannot log into Windows account, forgot the password",
			DeviceType:  "desktop",
			OS:          "windows",
			Category:    "security",
			Symptoms:    []string{"locked out", "forgot password", "cannot login"},
			Causes: []model.CauseEntry{
				{Cause: "Password forgotten or mistyped", Likelihood: types.LikelihoodHigh},
				{Cause: "Caps Lock enabled", Likelihood: types.LikelihoodMedium},
			},
			Solutions: []model.SolutionEntry{
				{Step: 1, Action: "Check if Caps Lock is on - password is case-sensitive", Why: "Common mistake that prevents login", RiskLevel: types.RiskLevelSafe},
				{Step: 2, Action: "Use 'I forgot my password' link on login screen for Microsoft accounts", Why: "Microsoft provides password reset via email or phone", RiskLevel: types.RiskLevelSafe},
				{Step: 3, Action: "For local accounts, use password reset disk if created previously", Why: "Password reset disk can restore access to local accounts", RiskLevel: types.RiskLevelSafe},
			},
		},
		{
			ID:          "mac_spinning_wheel_1",
			Problem:     "Mac showing spinning wheel frequently",
			Description: "MacBook displays the spinning wait cursor (beach ball) often, applications freeze",
			DeviceType:  "laptop",
			OS:          "macos",
			Category:    "performance",
			Symptoms:    []string{"spinning wheel", "beach ball", "freezing", "slow"},
			Causes: []model.CauseEntry{
				{Cause: "Insufficient RAM", Likelihood: types.LikelihoodHigh},
				{Cause: "Full startup disk", Likelihood: types.LikelihoodHigh},
				{Cause: "Too many background processes", Likelihood: types.LikelihoodMedium},
				{Cause: "Disk errors", Likelihood: types.LikelihoodLow},
			},
			Solutions: []model.SolutionEntry{
				{Step: 1, Action: "Open Activity Monitor to check CPU and memory usage", Why: "Identifies resource-hungry applications", RiskLevel: types.RiskLevelSafe},
				{Step: 2, Action: "Check available storage in About This Mac > Storage", Why: "macOS needs at least 10-15% free space to function properly", RiskLevel: types.RiskLevelSafe},
				{Step: 3, Action: "Quit unnecessary applications and close browser tabs", Why: "Frees up RAM and CPU resources", RiskLevel: types.RiskLevelSafe},
			},
		},
	}
}
